package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/mocks/repository_mocks"
	"github.com/a2sh3r/aitrade/internal/mocks/service_mocks"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/a2sh3r/aitrade/internal/processor"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

type mockProcessorClient struct {
	statuses map[string]*processor.TransactionResponse
	errors   map[string]error
}

func (m *mockProcessorClient) GetTransaction(_ context.Context, id string) (*processor.TransactionResponse, int, error) {
	if err, ok := m.errors[id]; ok {
		return nil, 0, err
	}
	if resp, ok := m.statuses[id]; ok {
		return resp, 200, nil
	}
	return nil, 204, nil
}

func TestPaymentConfirmer_confirmPending(t *testing.T) {
	logger.Log = zap.NewNop()

	confirmedID, failedID, pendingID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name      string
		pending   []models.Payment
		listErr   error
		client    *mockProcessorClient
		setStatus map[uuid.UUID]models.Status
		setErr    error
	}{
		{
			name: "подтвержденная транзакция завершает платеж",
			pending: []models.Payment{
				{ID: confirmedID, Amount: decimal.NewFromInt(250), TransactionID: strPtr("tx-ok")},
			},
			client: &mockProcessorClient{statuses: map[string]*processor.TransactionResponse{
				"tx-ok": {Transaction: "tx-ok", Status: processor.StatusConfirmed, Amount: decimalPtr(decimal.NewFromInt(250))},
			}},
			setStatus: map[uuid.UUID]models.Status{confirmedID: models.StatusCompleted},
		},
		{
			name: "неуспешная транзакция отклоняет платеж",
			pending: []models.Payment{
				{ID: failedID, Amount: decimal.NewFromInt(10), TransactionID: strPtr("tx-bad")},
			},
			client: &mockProcessorClient{statuses: map[string]*processor.TransactionResponse{
				"tx-bad": {Transaction: "tx-bad", Status: processor.StatusFailed},
			}},
			setStatus: map[uuid.UUID]models.Status{failedID: models.StatusRejected},
		},
		{
			name: "транзакция еще в обработке",
			pending: []models.Payment{
				{ID: pendingID, TransactionID: strPtr("tx-wait")},
			},
			client: &mockProcessorClient{statuses: map[string]*processor.TransactionResponse{
				"tx-wait": {Transaction: "tx-wait", Status: processor.StatusPending},
			}},
		},
		{
			name:    "платеж без id транзакции пропускается",
			pending: []models.Payment{{ID: uuid.New()}},
			client:  &mockProcessorClient{},
		},
		{
			name:    "ошибка процессора",
			pending: []models.Payment{{ID: uuid.New(), TransactionID: strPtr("tx-err")}},
			client:  &mockProcessorClient{errors: map[string]error{"tx-err": errors.New("network error")}},
		},
		{
			name:    "нет ответа от процессора",
			pending: []models.Payment{{ID: uuid.New(), TransactionID: strPtr("tx-none")}},
			client:  &mockProcessorClient{},
		},
		{
			name:    "ошибка получения платежей",
			listErr: errors.New("db error"),
			client:  &mockProcessorClient{},
		},
		{
			name: "ошибка смены статуса логируется",
			pending: []models.Payment{
				{ID: confirmedID, Amount: decimal.NewFromInt(250), TransactionID: strPtr("tx-ok")},
			},
			client: &mockProcessorClient{statuses: map[string]*processor.TransactionResponse{
				"tx-ok": {Transaction: "tx-ok", Status: processor.StatusConfirmed, Amount: decimalPtr(decimal.NewFromInt(200))},
			}},
			setStatus: map[uuid.UUID]models.Status{confirmedID: models.StatusCompleted},
			setErr:    errors.New("update failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository_mocks.NewMockPaymentRepository(ctrl)
			payments := service_mocks.NewMockPaymentService(ctrl)

			repo.EXPECT().GetUnconfirmedPayments(gomock.Any()).Return(tt.pending, tt.listErr)
			for id, status := range tt.setStatus {
				payments.EXPECT().SetStatus(gomock.Any(), id, status, nil).Return(&models.Payment{ID: id, Status: status}, tt.setErr)
			}

			c := NewPaymentConfirmer(repo, payments, tt.client, time.Second)
			c.confirmPending(context.Background())
		})
	}
}

func TestPaymentConfirmer_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockPaymentRepository(ctrl)
	repo.EXPECT().GetUnconfirmedPayments(gomock.Any()).Return(nil, nil).AnyTimes()

	c := NewPaymentConfirmer(repo, service_mocks.NewMockPaymentService(ctrl), &mockProcessorClient{}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("confirmer did not stop")
	}
}
