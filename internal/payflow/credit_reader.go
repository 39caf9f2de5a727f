package payflow

import (
	"context"
	"sync"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreditReader caches the last balance read for one user.
type CreditReader struct {
	credits CreditFetcher
	userID  uuid.UUID

	mu      sync.RWMutex
	balance decimal.Decimal
	loaded  bool
}

func NewCreditReader(credits CreditFetcher, userID uuid.UUID) *CreditReader {
	return &CreditReader{credits: credits, userID: userID}
}

// Refresh reads the balance. A failed read is logged and the last known value is kept.
func (r *CreditReader) Refresh(ctx context.Context) (decimal.Decimal, bool) {
	credit, err := r.credits.GetCredit(ctx, r.userID)
	if err != nil {
		logger.Log.Warn("failed to read credit", zap.Stringer("user", r.userID), zap.Error(err))
		return r.Balance()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.balance = credit.Amount
	r.loaded = true
	return r.balance, true
}

// Balance reports false until the first successful Refresh.
func (r *CreditReader) Balance() (decimal.Decimal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balance, r.loaded
}
