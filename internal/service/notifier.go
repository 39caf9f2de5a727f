package service

import (
	"context"

	"github.com/a2sh3r/aitrade/internal/telegram"
)

// Notifier delivers operator alerts. Implementations never fail the calling operation.
type Notifier interface {
	Notify(ctx context.Context, n telegram.Notification)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, telegram.Notification) {}

func orNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
