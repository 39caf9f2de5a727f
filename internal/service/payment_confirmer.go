package service

import (
	"context"
	"time"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/metrics"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/a2sh3r/aitrade/internal/processor"
	"github.com/a2sh3r/aitrade/internal/repository"
	"go.uber.org/zap"
)

// PaymentConfirmer settles pending deposits that carry a processor transaction id.
type PaymentConfirmer struct {
	repo            repository.PaymentRepository
	payments        PaymentService
	processorClient processor.ClientInterface
	pollInterval    time.Duration
}

func NewPaymentConfirmer(repo repository.PaymentRepository, payments PaymentService, client processor.ClientInterface, interval time.Duration) *PaymentConfirmer {
	return &PaymentConfirmer{
		repo:            repo,
		payments:        payments,
		processorClient: client,
		pollInterval:    interval,
	}
}

func (c *PaymentConfirmer) Run(ctx context.Context) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.confirmPending(ctx)
		}
	}
}

func (c *PaymentConfirmer) confirmPending(ctx context.Context) {
	payments, err := c.repo.GetUnconfirmedPayments(ctx)
	if err != nil {
		logger.Log.Error("failed to get unconfirmed payments", zap.Error(err))
		return
	}

	for _, payment := range payments {
		if payment.TransactionID == nil {
			continue
		}

		resp, _, err := c.processorClient.GetTransaction(ctx, *payment.TransactionID)
		if err != nil {
			logger.Log.Warn("failed to get transaction status", zap.Stringer("payment", payment.ID), zap.Error(err))
			continue
		}

		if resp == nil {
			continue
		}

		var status models.Status
		switch resp.Status {
		case processor.StatusConfirmed:
			status = models.StatusCompleted
		case processor.StatusFailed:
			status = models.StatusRejected
		default:
			continue
		}

		if resp.Amount != nil && !resp.Amount.Equal(payment.Amount) {
			logger.Log.Warn("processor amount differs from deposit",
				zap.Stringer("payment", payment.ID), zap.Stringer("deposit", payment.Amount), zap.Stringer("processor", *resp.Amount))
		}

		if _, err := c.payments.SetStatus(ctx, payment.ID, status, nil); err != nil {
			logger.Log.Error("failed to update payment", zap.Stringer("payment", payment.ID), zap.Error(err))
			continue
		}
		metrics.RecordConfirmation(string(status))
	}
}
