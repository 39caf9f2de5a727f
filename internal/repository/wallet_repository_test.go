package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletRepo(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()
	w := &models.CryptoWallet{ID: uuid.New(), UserID: userID, Currency: "btc", Address: "bc1qxyz", Label: "main", CreatedAt: time.Now()}

	mock.ExpectExec("INSERT INTO crypto_wallets").
		WithArgs(w.ID, w.UserID, w.Currency, w.Address, w.Label, w.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM crypto_wallets WHERE user_id").WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "currency", "address", "label", "created_at"}).
			AddRow(w.ID.String(), userID.String(), "btc", "bc1qxyz", "main", w.CreatedAt))

	r := NewWalletRepository(db)
	require.NoError(t, r.CreateWallet(context.Background(), w))

	wallets, err := r.GetWalletsByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, "bc1qxyz", wallets[0].Address)
}

func TestLeadRepo_CreateLead(t *testing.T) {
	db, mock := newMockDB(t)
	lead := &models.Lead{ID: uuid.New(), Name: "Anna", Email: "anna@example.com", Source: "landing", CreatedAt: time.Now()}

	mock.ExpectExec("INSERT INTO leads").
		WithArgs(lead.ID, lead.Name, lead.Email, "", "", "landing", lead.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewLeadRepository(db).CreateLead(context.Background(), lead))
}
