package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, w *models.Withdrawal) error
	GetWithdrawalsByUser(ctx context.Context, userID uuid.UUID) ([]models.Withdrawal, error)
	GetAllWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	ProcessWithdrawalStatus(ctx context.Context, withdrawalID uuid.UUID, status models.Status, notes *string) (*models.Withdrawal, error)
}

const withdrawalColumns = `id, user_id, user_email, amount, currency, wallet_currency, wallet_address, status, notes, created_at, updated_at`

func scanWithdrawal(row rowScanner) (models.Withdrawal, error) {
	var w models.Withdrawal
	err := row.Scan(&w.ID, &w.UserID, &w.UserEmail, &w.Amount, &w.Currency, &w.WalletCurrency,
		&w.WalletAddress, &w.Status, &w.Notes, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

func (r *withdrawalRepo) CreateWithdrawal(ctx context.Context, w *models.Withdrawal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO withdrawals (id, user_id, user_email, amount, currency, wallet_currency, wallet_address, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, w.ID, w.UserID, w.UserEmail, w.Amount, w.Currency, w.WalletCurrency, w.WalletAddress,
		w.Status, w.Notes, w.CreatedAt, w.UpdatedAt)
	return err
}

func (r *withdrawalRepo) GetWithdrawalsByUser(ctx context.Context, userID uuid.UUID) ([]models.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryWithdrawals(ctx, query, userID)
}

func (r *withdrawalRepo) GetAllWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals ORDER BY created_at DESC`
	return r.queryWithdrawals(ctx, query)
}

func (r *withdrawalRepo) queryWithdrawals(ctx context.Context, query string, args ...any) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}

func (r *withdrawalRepo) ProcessWithdrawalStatus(ctx context.Context, withdrawalID uuid.UUID, status models.Status, notes *string) (*models.Withdrawal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollback(tx)

	var (
		current models.Status
		userID  uuid.UUID
		amount  decimal.Decimal
	)
	err = tx.QueryRowContext(ctx, `
		SELECT status, user_id, amount FROM withdrawals WHERE id = $1 FOR UPDATE
	`, withdrawalID).Scan(&current, &userID, &amount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}
	if current.IsTerminal() {
		return nil, apperrors.ErrWithdrawalFinal
	}

	if status == models.StatusCompleted {
		res, err := tx.ExecContext(ctx, `
			UPDATE user_credits
			SET amount = amount - $1, last_updated = now()
			WHERE user_id = $2 AND amount >= $1
		`, amount, userID)
		if err != nil {
			return nil, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, apperrors.ErrInsufficientFunds
		}
	}

	query := `UPDATE withdrawals SET status = $1, notes = COALESCE($2, notes), updated_at = now()
			  WHERE id = $3 RETURNING ` + withdrawalColumns
	w, err := scanWithdrawal(tx.QueryRowContext(ctx, query, status, notes, withdrawalID))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &w, nil
}
