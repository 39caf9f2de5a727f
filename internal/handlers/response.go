package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", zap.Error(err))
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.ErrInvalidRequest
	}
	return nil
}

var errorStatus = []struct {
	err    error
	status int
}{
	{apperrors.ErrInvalidRequest, http.StatusBadRequest},
	{apperrors.ErrInvalidAmount, http.StatusBadRequest},
	{apperrors.ErrInvalidCurrency, http.StatusBadRequest},
	{apperrors.ErrInvalidWalletAddress, http.StatusBadRequest},
	{apperrors.ErrInvalidStatus, http.StatusBadRequest},
	{apperrors.ErrInvalidFee, http.StatusBadRequest},
	{apperrors.ErrInvalidRole, http.StatusBadRequest},
	{apperrors.ErrInvalidLead, http.StatusBadRequest},
	{apperrors.ErrAffiliateSelfInvite, http.StatusBadRequest},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
	{apperrors.ErrInsufficientFunds, http.StatusPaymentRequired},
	{apperrors.ErrForbidden, http.StatusForbidden},
	{apperrors.ErrUserNotFound, http.StatusNotFound},
	{apperrors.ErrPaymentNotFound, http.StatusNotFound},
	{apperrors.ErrWithdrawalNotFound, http.StatusNotFound},
	{apperrors.ErrAffiliateCodeNotFound, http.StatusNotFound},
	{apperrors.ErrPayoutNotFound, http.StatusNotFound},
	{apperrors.ErrUnknownProcedure, http.StatusNotFound},
	{apperrors.ErrUserAlreadyExists, http.StatusConflict},
	{apperrors.ErrPaymentFinal, http.StatusConflict},
	{apperrors.ErrWithdrawalFinal, http.StatusConflict},
	{apperrors.ErrAlreadyInvited, http.StatusConflict},
	{apperrors.ErrPayoutExists, http.StatusConflict},
	{apperrors.ErrPayoutFinal, http.StatusConflict},
	{apperrors.ErrPayoutFeeNotPaid, http.StatusConflict},
}

// statusFor maps a business error to its HTTP status. Anything unknown is a 500.
func statusFor(err error) int {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the sentinel's message, internal errors are logged and hidden.
func writeError(w http.ResponseWriter, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Log.Error(msg, zap.Error(err))
		http.Error(w, "internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}
	return userID, ok
}
