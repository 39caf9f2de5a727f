package handlers

import (
	"net/http"

	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req models.PaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	payment, err := h.paymentService.CreatePayment(r.Context(), userID, req)
	if err != nil {
		writeError(w, err, "create payment failed")
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	payments, err := h.paymentService.GetPayments(r.Context(), userID)
	if err != nil {
		writeError(w, err, "failed to get payments")
		return
	}
	if len(payments) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	paymentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}

	payment, err := h.paymentService.GetPayment(r.Context(), userID, paymentID)
	if err != nil {
		writeError(w, err, "failed to get payment")
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListPayments(r.Context(), models.Status(r.URL.Query().Get("status")))
	if err != nil {
		writeError(w, err, "failed to list payments")
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *Handler) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	paymentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}

	var req models.PaymentStatusUpdate
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	payment, err := h.paymentService.SetStatus(r.Context(), paymentID, req.Status, req.Notes)
	if err != nil {
		writeError(w, err, "failed to set payment status")
		return
	}
	writeJSON(w, http.StatusOK, payment)
}
