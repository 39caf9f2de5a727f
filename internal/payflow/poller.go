package payflow

import (
	"context"
	"errors"
	"time"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/metrics"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultPollInterval = 15 * time.Second

var ErrNoPayment = errors.New("no payment to poll")

// Poller reads a payment until it leaves the pending state.
type Poller struct {
	payments  PaymentReader
	userID    uuid.UUID
	paymentID *uuid.UUID
	interval  time.Duration

	// OnStatus, when set, sees every successfully read status.
	OnStatus func(models.Status)
}

func NewPoller(payments PaymentReader, userID uuid.UUID, paymentID *uuid.UUID, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{payments: payments, userID: userID, paymentID: paymentID, interval: interval}
}

// Run reads once right away and then every interval. It returns the first terminal status, or the
// context error. A poller without a payment id is inert and returns ErrNoPayment.
func (p *Poller) Run(ctx context.Context) (models.Status, error) {
	if p.paymentID == nil {
		return "", ErrNoPayment
	}

	if status, done, err := p.read(ctx); done || err != nil {
		return status, err
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
			if status, done, err := p.read(ctx); done || err != nil {
				return status, err
			}
		}
	}
}

func (p *Poller) read(ctx context.Context) (models.Status, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	payment, err := p.payments.GetPayment(ctx, p.userID, *p.paymentID)
	if ctxErr := ctx.Err(); ctxErr != nil {
		// the flow is gone, whatever came back is stale
		return "", false, ctxErr
	}
	if err != nil {
		metrics.RecordPaymentPoll("error")
		logger.Log.Warn("payment status read failed", zap.Stringer("payment", *p.paymentID), zap.Error(err))
		return "", false, nil
	}

	metrics.RecordPaymentPoll(string(payment.Status))
	if p.OnStatus != nil {
		p.OnStatus(payment.Status)
	}
	return payment.Status, payment.Status.IsTerminal(), nil
}
