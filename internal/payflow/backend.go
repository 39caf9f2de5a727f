// Package payflow reconciles a submitted deposit with the user's balance. A payment status poller
// and balance change events race to resolve a flow, and exactly one of them wins.
package payflow

import (
	"context"

	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/a2sh3r/aitrade/internal/realtime"
	"github.com/google/uuid"
)

type PaymentReader interface {
	GetPayment(ctx context.Context, userID, paymentID uuid.UUID) (*models.Payment, error)
}

type CreditFetcher interface {
	GetCredit(ctx context.Context, userID uuid.UUID) (models.UserCredit, error)
}

type SessionChecker interface {
	IsActive(ctx context.Context, sid string) (bool, error)
}

// Backend is the set of capabilities a flow needs. It is built once at startup and shared by all
// flows.
type Backend struct {
	Payments PaymentReader
	Credits  CreditFetcher
	Changes  realtime.Subscriber
	Sessions SessionChecker
}
