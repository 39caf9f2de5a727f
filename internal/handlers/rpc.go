package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type procedure struct {
	admin bool
	call  func(ctx context.Context, caller uuid.UUID, args json.RawMessage) (any, error)
}

func (h *Handler) registerProcedures() map[string]procedure {
	return map[string]procedure{
		"process_withdrawal_status":    {admin: true, call: h.rpcProcessWithdrawalStatus},
		"get_all_withdrawals":          {admin: true, call: h.rpcGetAllWithdrawals},
		"process_affiliate_invitation": {call: h.rpcProcessAffiliateInvitation},
		"get_affiliate_statistics":     {call: h.rpcGetAffiliateStatistics},
		"create_total_payout_request":  {admin: true, call: h.rpcCreateTotalPayoutRequest},
		"update_total_payout_status":   {admin: true, call: h.rpcUpdateTotalPayoutStatus},
		"add_user_role":                {admin: true, call: h.rpcAddUserRole},
	}
}

func bind(args json.RawMessage, v any) error {
	if err := json.Unmarshal(args, v); err != nil {
		return apperrors.ErrInvalidRequest
	}
	return nil
}

// RPC runs a named procedure with a JSON argument object and answers with models.RPCResult.
func (h *Handler) RPC(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, "name")
	proc, ok := h.procedures[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, models.RPCResult{Message: apperrors.ErrUnknownProcedure.Error()})
		return
	}

	if proc.admin {
		admin, err := h.userService.IsAdmin(r.Context(), caller)
		if err != nil {
			logger.Log.Error("role lookup failed", zap.String("procedure", name), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, models.RPCResult{Message: "internal server error"})
			return
		}
		if !admin {
			writeJSON(w, http.StatusForbidden, models.RPCResult{Message: apperrors.ErrForbidden.Error()})
			return
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.RPCResult{Message: apperrors.ErrInvalidRequest.Error()})
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		writeJSON(w, http.StatusBadRequest, models.RPCResult{Message: apperrors.ErrInvalidRequest.Error()})
		return
	}

	data, err := proc.call(r.Context(), caller, body)
	if err != nil {
		status := statusFor(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			logger.Log.Error("procedure failed", zap.String("procedure", name), zap.Error(err))
			msg = "internal server error"
		}
		writeJSON(w, status, models.RPCResult{Message: msg})
		return
	}

	writeJSON(w, http.StatusOK, models.RPCResult{Success: true, Data: data})
}

type withdrawalStatusArgs struct {
	WithdrawalID uuid.UUID     `json:"withdrawal_id"`
	NewStatus    models.Status `json:"new_status"`
	Notes        *string       `json:"notes"`
}

func (h *Handler) rpcProcessWithdrawalStatus(ctx context.Context, _ uuid.UUID, args json.RawMessage) (any, error) {
	var a withdrawalStatusArgs
	if err := bind(args, &a); err != nil {
		return nil, err
	}
	if a.WithdrawalID == uuid.Nil {
		return nil, apperrors.ErrInvalidRequest
	}
	return h.withdrawalService.ProcessStatus(ctx, a.WithdrawalID, a.NewStatus, a.Notes)
}

func (h *Handler) rpcGetAllWithdrawals(ctx context.Context, _ uuid.UUID, _ json.RawMessage) (any, error) {
	withdrawals, err := h.withdrawalService.GetAllWithdrawals(ctx)
	if err != nil {
		return nil, err
	}
	if withdrawals == nil {
		withdrawals = []models.Withdrawal{}
	}
	return withdrawals, nil
}

type invitationArgs struct {
	AffiliateCode string     `json:"affiliate_code"`
	InvitedUserID *uuid.UUID `json:"invited_user_id"`
}

// rpcProcessAffiliateInvitation lets a user redeem a code for themselves. Admins may redeem on
// behalf of another user.
func (h *Handler) rpcProcessAffiliateInvitation(ctx context.Context, caller uuid.UUID, args json.RawMessage) (any, error) {
	var a invitationArgs
	if err := bind(args, &a); err != nil {
		return nil, err
	}

	invited := caller
	if a.InvitedUserID != nil && *a.InvitedUserID != caller {
		admin, err := h.userService.IsAdmin(ctx, caller)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, apperrors.ErrForbidden
		}
		invited = *a.InvitedUserID
	}

	return h.affiliateService.ProcessInvitation(ctx, a.AffiliateCode, invited)
}

func (h *Handler) rpcGetAffiliateStatistics(ctx context.Context, caller uuid.UUID, _ json.RawMessage) (any, error) {
	return h.affiliateService.GetStatistics(ctx, caller)
}

type payoutRequestArgs struct {
	UserID        uuid.UUID       `json:"user_id"`
	FeePercentage decimal.Decimal `json:"fee_percentage"`
}

func (h *Handler) rpcCreateTotalPayoutRequest(ctx context.Context, _ uuid.UUID, args json.RawMessage) (any, error) {
	var a payoutRequestArgs
	if err := bind(args, &a); err != nil {
		return nil, err
	}
	if a.UserID == uuid.Nil {
		return nil, apperrors.ErrInvalidRequest
	}
	return h.payoutService.CreateRequest(ctx, a.UserID, a.FeePercentage)
}

type payoutStatusArgs struct {
	PayoutID uuid.UUID           `json:"payout_id"`
	Status   models.PayoutStatus `json:"status"`
}

func (h *Handler) rpcUpdateTotalPayoutStatus(ctx context.Context, _ uuid.UUID, args json.RawMessage) (any, error) {
	var a payoutStatusArgs
	if err := bind(args, &a); err != nil {
		return nil, err
	}
	if a.PayoutID == uuid.Nil {
		return nil, apperrors.ErrInvalidRequest
	}
	return h.payoutService.UpdateStatus(ctx, a.PayoutID, a.Status)
}

type roleArgs struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

func (h *Handler) rpcAddUserRole(ctx context.Context, _ uuid.UUID, args json.RawMessage) (any, error) {
	var a roleArgs
	if err := bind(args, &a); err != nil {
		return nil, err
	}
	if err := h.userService.AddRole(ctx, a.UserID, a.Role); err != nil {
		return nil, err
	}
	return h.userService.GetRoles(ctx, a.UserID)
}
