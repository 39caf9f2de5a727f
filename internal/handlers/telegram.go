package handlers

import (
	"errors"
	"net/http"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/telegram"
	"go.uber.org/zap"
)

type relayResponse struct {
	Success   bool   `json:"success"`
	Delivered int    `json:"delivered,omitempty"`
	Error     string `json:"error,omitempty"`
}

// TelegramNotify is the public notification function used by the landing page and the app.
// Every outcome, including a panic, is answered with a JSON envelope.
func (h *Handler) TelegramNotify(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.Error("telegram relay panicked", zap.Any("panic", rec))
			writeJSON(w, http.StatusInternalServerError, relayResponse{Error: "internal error"})
		}
	}()

	var n telegram.Notification
	if err := decodeJSON(r, &n); err != nil {
		writeJSON(w, http.StatusBadRequest, relayResponse{Error: "invalid JSON payload"})
		return
	}

	delivered, err := h.relay.Deliver(r.Context(), n)
	switch {
	case errors.Is(err, telegram.ErrValidation):
		writeJSON(w, http.StatusBadRequest, relayResponse{Error: err.Error()})
	case err != nil:
		logger.Log.Error("telegram relay failed", zap.String("type", string(n.Type)), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, relayResponse{Error: "failed to deliver notification"})
	default:
		writeJSON(w, http.StatusOK, relayResponse{Success: true, Delivered: delivered})
	}
}
