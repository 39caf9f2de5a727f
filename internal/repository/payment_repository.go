package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPayment(ctx context.Context, userID, paymentID uuid.UUID) (*models.Payment, error)
	GetPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]models.Payment, error)
	ListPayments(ctx context.Context, status models.Status) ([]models.Payment, error)
	GetUnconfirmedPayments(ctx context.Context) ([]models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, status models.Status, notes *string) (*models.Payment, error)
}

const paymentColumns = `id, user_id, user_email, amount, currency, wallet_currency, status, transaction_id, notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayment(row rowScanner) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.UserID, &p.UserEmail, &p.Amount, &p.Currency, &p.WalletCurrency,
		&p.Status, &p.TransactionID, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

type paymentRepo struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	query := `INSERT INTO payments (id, user_id, user_email, amount, currency, wallet_currency, status, transaction_id, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.UserEmail, p.Amount, p.Currency, p.WalletCurrency,
		p.Status, p.TransactionID, p.Notes, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *paymentRepo) GetPayment(ctx context.Context, userID, paymentID uuid.UUID) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 AND user_id = $2`
	p, err := scanPayment(r.db.QueryRowContext(ctx, query, paymentID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) GetPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryPayments(ctx, query, userID)
}

func (r *paymentRepo) ListPayments(ctx context.Context, status models.Status) ([]models.Payment, error) {
	if status == "" {
		return r.queryPayments(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY created_at DESC`)
	}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status = $1 ORDER BY created_at DESC`
	return r.queryPayments(ctx, query, status)
}

func (r *paymentRepo) GetUnconfirmedPayments(ctx context.Context) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
			  WHERE status = 'pending' AND transaction_id IS NOT NULL ORDER BY created_at`
	return r.queryPayments(ctx, query)
}

func (r *paymentRepo) queryPayments(ctx context.Context, query string, args ...any) ([]models.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query payments", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var payments []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			logger.Log.Error("failed to scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// UpdatePaymentStatus moves a pending payment to a terminal status. Completion credits the
// payment amount to the owner's balance in the same transaction.
func (r *paymentRepo) UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, status models.Status, notes *string) (*models.Payment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollback(tx)

	var current models.Status
	err = tx.QueryRowContext(ctx, `SELECT status FROM payments WHERE id = $1 FOR UPDATE`, paymentID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	if current.IsTerminal() {
		return nil, apperrors.ErrPaymentFinal
	}

	query := `UPDATE payments SET status = $1, notes = COALESCE($2, notes), updated_at = now()
			  WHERE id = $3 RETURNING ` + paymentColumns
	p, err := scanPayment(tx.QueryRowContext(ctx, query, status, notes, paymentID))
	if err != nil {
		return nil, err
	}

	if status == models.StatusCompleted {
		if err := addCredit(ctx, tx, p.UserID, p.Amount); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &p, nil
}
