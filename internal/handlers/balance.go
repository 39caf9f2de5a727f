package handlers

import (
	"net/http"

	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) GetCredits(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	credit, err := h.creditService.GetCredit(r.Context(), userID)
	if err != nil {
		writeError(w, err, "failed to get user credits")
		return
	}
	writeJSON(w, http.StatusOK, credit)
}

func (h *Handler) GrantBonus(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req models.BonusRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	credit, err := h.creditService.GrantBonus(r.Context(), userID, req.Amount)
	if err != nil {
		writeError(w, err, "grant bonus failed")
		return
	}
	writeJSON(w, http.StatusOK, credit)
}

func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req models.WithdrawalRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.withdrawalService.CreateWithdrawal(r.Context(), userID, req)
	if err != nil {
		writeError(w, err, "withdraw error")
		return
	}
	writeJSON(w, http.StatusCreated, withdrawal)
}

func (h *Handler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	withdrawals, err := h.withdrawalService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		writeError(w, err, "failed to get withdrawals")
		return
	}
	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, withdrawals)
}
