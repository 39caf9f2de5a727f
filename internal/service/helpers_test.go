package service

import (
	"context"
	"sync"

	"github.com/a2sh3r/aitrade/internal/telegram"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []telegram.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n telegram.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func strPtr(s string) *string {
	return &s
}
