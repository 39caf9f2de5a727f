package handlers

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/middleware"
	"github.com/a2sh3r/aitrade/internal/payflow"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsSink writes flow events as JSON text frames. After the first failed write the client is
// considered gone and later events are dropped.
type wsSink struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	failed bool
}

func (s *wsSink) Emit(ev payflow.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed {
		return
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(ev); err != nil {
		s.failed = true
		logger.Log.Debug("flow event not written", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}

func (s *wsSink) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed {
		return
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "flow finished")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}

func queryFlag(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func (h *Handler) flowOptions(r *http.Request, userID uuid.UUID) payflow.Options {
	opts := h.flowDefaults
	opts.UserID = userID
	opts.SessionID, _ = middleware.GetSessionID(r.Context())
	opts.Enabled = true

	q := r.URL.Query()
	opts.Activation = queryFlag(q.Get("activation"))
	opts.NoAutoRedirect = queryFlag(q.Get("no_auto_redirect"))
	return opts
}

// PaymentFlow streams the reconciliation of one submitted deposit.
func (h *Handler) PaymentFlow(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	paymentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}

	if _, err := h.paymentService.GetPayment(r.Context(), userID, paymentID); err != nil {
		writeError(w, err, "failed to get payment")
		return
	}

	opts := h.flowOptions(r, userID)
	opts.PaymentID = &paymentID
	opts.PaymentSubmitted = true
	h.serveFlow(w, r, opts)
}

// ActivationFlow waits for the balance to reach the activation threshold without a known payment.
func (h *Handler) ActivationFlow(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	opts := h.flowOptions(r, userID)
	opts.Activation = true
	opts.PaymentSubmitted = true
	h.serveFlow(w, r, opts)
}

func (h *Handler) serveFlow(w http.ResponseWriter, r *http.Request, opts payflow.Options) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// the client never sends anything, a read error means it went away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sink := &wsSink{conn: conn}
	state := payflow.NewFlow(h.flowBackend, opts, sink).Run(ctx)
	sink.close()

	logger.Log.Debug("payment flow closed", zap.Stringer("user", opts.UserID), zap.String("state", string(state)))
}
