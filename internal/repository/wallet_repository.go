package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/google/uuid"
)

type WalletRepository interface {
	CreateWallet(ctx context.Context, w *models.CryptoWallet) error
	GetWalletsByUser(ctx context.Context, userID uuid.UUID) ([]models.CryptoWallet, error)
}

type walletRepo struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) WalletRepository {
	return &walletRepo{db: db}
}

func (r *walletRepo) CreateWallet(ctx context.Context, w *models.CryptoWallet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO crypto_wallets (id, user_id, currency, address, label, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, currency, address) DO UPDATE SET label = EXCLUDED.label
	`, w.ID, w.UserID, w.Currency, w.Address, w.Label, w.CreatedAt)
	return err
}

func (r *walletRepo) GetWalletsByUser(ctx context.Context, userID uuid.UUID) ([]models.CryptoWallet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, currency, address, label, created_at
		FROM crypto_wallets WHERE user_id = $1 ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var wallets []models.CryptoWallet
	for rows.Next() {
		var w models.CryptoWallet
		if err := rows.Scan(&w.ID, &w.UserID, &w.Currency, &w.Address, &w.Label, &w.CreatedAt); err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}
