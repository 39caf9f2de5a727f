package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/google/uuid"
)

type PayoutRepository interface {
	CreatePayout(ctx context.Context, p *models.TotalPayoutRequest) error
	GetPayout(ctx context.Context, payoutID uuid.UUID) (*models.TotalPayoutRequest, error)
	GetPayoutsByUser(ctx context.Context, userID uuid.UUID) ([]models.TotalPayoutRequest, error)
	MarkFeePaid(ctx context.Context, payoutID, userID uuid.UUID, currency, walletAddress string) (*models.TotalPayoutRequest, error)
	UpdatePayoutStatus(ctx context.Context, payoutID uuid.UUID, status models.PayoutStatus) (*models.TotalPayoutRequest, error)
}

const payoutColumns = `id, user_id, fee_percentage, user_balance, payout_currency, payout_wallet_address, fee_paid, fee_amount, status, created_at, updated_at`

func scanPayout(row rowScanner) (models.TotalPayoutRequest, error) {
	var p models.TotalPayoutRequest
	err := row.Scan(&p.ID, &p.UserID, &p.FeePercentage, &p.UserBalance, &p.PayoutCurrency,
		&p.PayoutWalletAddress, &p.FeePaid, &p.FeeAmount, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

type payoutRepo struct {
	db *sql.DB
}

func NewPayoutRepository(db *sql.DB) PayoutRepository {
	return &payoutRepo{db: db}
}

func (r *payoutRepo) CreatePayout(ctx context.Context, p *models.TotalPayoutRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO total_payouts (id, user_id, fee_percentage, user_balance, fee_paid, fee_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, p.ID, p.UserID, p.FeePercentage, p.UserBalance, p.FeePaid, p.FeeAmount, p.Status, p.CreatedAt, p.UpdatedAt)
	if isUniqueViolation(err) {
		return apperrors.ErrPayoutExists
	}
	return err
}

func (r *payoutRepo) GetPayout(ctx context.Context, payoutID uuid.UUID) (*models.TotalPayoutRequest, error) {
	p, err := scanPayout(r.db.QueryRowContext(ctx, `SELECT `+payoutColumns+` FROM total_payouts WHERE id = $1`, payoutID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrPayoutNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *payoutRepo) GetPayoutsByUser(ctx context.Context, userID uuid.UUID) ([]models.TotalPayoutRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+payoutColumns+` FROM total_payouts WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var payouts []models.TotalPayoutRequest
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, rows.Err()
}

func (r *payoutRepo) MarkFeePaid(ctx context.Context, payoutID, userID uuid.UUID, currency, walletAddress string) (*models.TotalPayoutRequest, error) {
	query := `UPDATE total_payouts
			  SET fee_paid = true, status = 'fee_paid', payout_currency = $1, payout_wallet_address = $2, updated_at = now()
			  WHERE id = $3 AND user_id = $4 AND status = 'pending'
			  RETURNING ` + payoutColumns
	p, err := scanPayout(r.db.QueryRowContext(ctx, query, currency, walletAddress, payoutID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		existing, getErr := r.GetPayout(ctx, payoutID)
		if getErr != nil {
			return nil, getErr
		}
		if existing.UserID != userID {
			return nil, apperrors.ErrPayoutNotFound
		}
		return nil, apperrors.ErrPayoutFinal
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePayoutStatus closes an open request. Completion releases the whole balance, so the
// user's credit is zeroed in the same transaction.
func (r *payoutRepo) UpdatePayoutStatus(ctx context.Context, payoutID uuid.UUID, status models.PayoutStatus) (*models.TotalPayoutRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollback(tx)

	var (
		current models.PayoutStatus
		feePaid bool
		userID  uuid.UUID
	)
	err = tx.QueryRowContext(ctx, `SELECT status, fee_paid, user_id FROM total_payouts WHERE id = $1 FOR UPDATE`, payoutID).
		Scan(&current, &feePaid, &userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrPayoutNotFound
	}
	if err != nil {
		return nil, err
	}
	if !current.IsOpen() {
		return nil, apperrors.ErrPayoutFinal
	}

	if status == models.PayoutCompleted {
		if !feePaid {
			return nil, apperrors.ErrPayoutFeeNotPaid
		}
		if _, err := tx.ExecContext(ctx, `UPDATE user_credits SET amount = 0, last_updated = now() WHERE user_id = $1`, userID); err != nil {
			return nil, err
		}
	}

	p, err := scanPayout(tx.QueryRowContext(ctx,
		`UPDATE total_payouts SET status = $1, updated_at = now() WHERE id = $2 RETURNING `+payoutColumns, status, payoutID))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &p, nil
}
