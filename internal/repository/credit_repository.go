package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreditRepository interface {
	GetCredit(ctx context.Context, userID uuid.UUID) (models.UserCredit, error)
	AddCredit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const addCreditQuery = `
	INSERT INTO user_credits (user_id, amount, last_updated)
	VALUES ($1, $2, now())
	ON CONFLICT (user_id) DO UPDATE
	SET amount = user_credits.amount + EXCLUDED.amount,
	    last_updated = now()
`

func addCredit(ctx context.Context, ex execer, userID uuid.UUID, amount decimal.Decimal) error {
	_, err := ex.ExecContext(ctx, addCreditQuery, userID, amount)
	return err
}

type creditRepo struct {
	db *sql.DB
}

func NewCreditRepository(db *sql.DB) CreditRepository {
	return &creditRepo{db: db}
}

func (r *creditRepo) GetCredit(ctx context.Context, userID uuid.UUID) (models.UserCredit, error) {
	credit := models.UserCredit{UserID: userID}
	query := `
		SELECT amount, last_updated FROM user_credits WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&credit.Amount, &credit.LastUpdated)

	if errors.Is(err, sql.ErrNoRows) {
		return models.UserCredit{UserID: userID, Amount: decimal.Zero, LastUpdated: time.Time{}}, nil
	}
	if err != nil {
		logger.Log.Error("failed to get credit", zap.Error(err))
		return models.UserCredit{}, err
	}
	return credit, nil
}

func (r *creditRepo) AddCredit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	return addCredit(ctx, r.db, userID, amount)
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.Log.Error("rollback error", zap.Error(err))
	}
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Log.Error("failed to close rows", zap.Error(err))
	}
}
