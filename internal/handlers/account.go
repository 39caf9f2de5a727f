package handlers

import (
	"net/http"

	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type walletRequest struct {
	Currency string `json:"currency"`
	Address  string `json:"address"`
	Label    string `json:"label,omitempty"`
}

func (h *Handler) AddWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req walletRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	wallet, err := h.walletService.AddWallet(r.Context(), userID, req.Currency, req.Address, req.Label)
	if err != nil {
		writeError(w, err, "add wallet failed")
		return
	}
	writeJSON(w, http.StatusCreated, wallet)
}

func (h *Handler) GetWallets(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	wallets, err := h.walletService.GetWallets(r.Context(), userID)
	if err != nil {
		writeError(w, err, "failed to get wallets")
		return
	}
	if wallets == nil {
		wallets = []models.CryptoWallet{}
	}
	writeJSON(w, http.StatusOK, wallets)
}

func (h *Handler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	payouts, err := h.payoutService.GetPayouts(r.Context(), userID)
	if err != nil {
		writeError(w, err, "failed to get payouts")
		return
	}
	if payouts == nil {
		payouts = []models.TotalPayoutRequest{}
	}
	writeJSON(w, http.StatusOK, payouts)
}

func (h *Handler) PayPayoutFee(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	payoutID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid payout id", http.StatusBadRequest)
		return
	}

	var req models.PayoutFeeRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	payout, err := h.payoutService.PayFee(r.Context(), userID, payoutID, req)
	if err != nil {
		writeError(w, err, "pay payout fee failed")
		return
	}
	writeJSON(w, http.StatusOK, payout)
}

func (h *Handler) GetAffiliateCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	code, err := h.affiliateService.GetOrCreateCode(r.Context(), userID)
	if err != nil {
		writeError(w, err, "failed to get affiliate code")
		return
	}
	writeJSON(w, http.StatusOK, code)
}

func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req models.Lead
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	lead, err := h.leadService.CreateLead(r.Context(), req)
	if err != nil {
		writeError(w, err, "create lead failed")
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}
