package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/metrics"
	"go.uber.org/zap"
)

// Relay validates notifications and fans them out to every configured chat.
type Relay struct {
	sender  Sender
	chatIDs []string
}

func NewRelay(sender Sender, chatIDs []string) *Relay {
	return &Relay{sender: sender, chatIDs: chatIDs}
}

// Deliver returns how many chats received the message. It succeeds when at least one did.
// Validation errors wrap ErrValidation and nothing is sent.
func (r *Relay) Deliver(ctx context.Context, n Notification) (int, error) {
	if err := n.Validate(); err != nil {
		return 0, err
	}
	if len(r.chatIDs) == 0 {
		return 0, fmt.Errorf("%w: no chat configured", apperrors.ErrNotificationFailed)
	}

	text := n.Format()

	var (
		delivered int
		errs      []error
	)
	for _, chatID := range r.chatIDs {
		if err := r.sender.SendMessage(ctx, chatID, text); err != nil {
			logger.Log.Warn("telegram delivery failed", zap.String("chat", chatID), zap.String("type", string(n.Type)), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		delivered++
	}

	metrics.RecordTelegramDelivery(string(n.Type), delivered > 0)

	if delivered == 0 {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrNotificationFailed, errors.Join(errs...))
	}
	return delivered, nil
}

// Notify is the fire-and-forget variant used by business flows. A broken relay never fails the
// caller's operation.
func (r *Relay) Notify(ctx context.Context, n Notification) {
	if _, err := r.Deliver(ctx, n); err != nil {
		logger.Log.Warn("notification not delivered", zap.String("type", string(n.Type)), zap.Error(err))
	}
}
