package repository

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var withdrawalCols = []string{"id", "user_id", "user_email", "amount", "currency", "wallet_currency", "wallet_address", "status", "notes", "created_at", "updated_at"}

func withdrawalRow(id, userID uuid.UUID, amount string, status models.Status) []driver.Value {
	now := time.Now()
	return []driver.Value{id.String(), userID.String(), "a@b.com", amount, "EUR", "btc", "bc1qxyz", string(status), nil, now, now}
}

func TestWithdrawalRepo_CreateWithdrawal(t *testing.T) {
	db, mock := newMockDB(t)
	w := &models.Withdrawal{
		ID: uuid.New(), UserID: uuid.New(), UserEmail: "a@b.com", Amount: decimal.NewFromInt(100),
		Currency: "EUR", WalletCurrency: "btc", WalletAddress: "bc1qxyz", Status: models.StatusPending,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO withdrawals").
		WithArgs(w.ID, w.UserID, w.UserEmail, w.Amount, w.Currency, w.WalletCurrency, w.WalletAddress,
			w.Status, nil, w.CreatedAt, w.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewWithdrawalRepository(db).CreateWithdrawal(context.Background(), w))
}

func TestWithdrawalRepo_ProcessWithdrawalStatus(t *testing.T) {
	id, userID := uuid.New(), uuid.New()
	notes := "paid out"

	tests := []struct {
		name    string
		status  models.Status
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:   "completed debits balance",
			status: models.StatusCompleted,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT status, user_id, amount FROM withdrawals").WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"status", "user_id", "amount"}).AddRow("pending", userID.String(), "100"))
				mock.ExpectExec("UPDATE user_credits").WithArgs(decimal.NewFromInt(100), userID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("UPDATE withdrawals SET status").WithArgs(models.StatusCompleted, &notes, id).
					WillReturnRows(sqlmock.NewRows(withdrawalCols).AddRow(withdrawalRow(id, userID, "100", models.StatusCompleted)...))
				mock.ExpectCommit()
			},
		},
		{
			name:   "insufficient funds",
			status: models.StatusCompleted,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT status, user_id, amount FROM withdrawals").WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"status", "user_id", "amount"}).AddRow("pending", userID.String(), "100"))
				mock.ExpectExec("UPDATE user_credits").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: apperrors.ErrInsufficientFunds,
		},
		{
			name:   "rejected does not touch balance",
			status: models.StatusRejected,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT status, user_id, amount FROM withdrawals").WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"status", "user_id", "amount"}).AddRow("pending", userID.String(), "100"))
				mock.ExpectQuery("UPDATE withdrawals SET status").
					WillReturnRows(sqlmock.NewRows(withdrawalCols).AddRow(withdrawalRow(id, userID, "100", models.StatusRejected)...))
				mock.ExpectCommit()
			},
		},
		{
			name:   "already terminal",
			status: models.StatusCompleted,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT status, user_id, amount FROM withdrawals").WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"status", "user_id", "amount"}).AddRow("rejected", userID.String(), "100"))
				mock.ExpectRollback()
			},
			wantErr: apperrors.ErrWithdrawalFinal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			w, err := NewWithdrawalRepository(db).ProcessWithdrawalStatus(context.Background(), id, tt.status, &notes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, w.Status)
		})
	}
}
