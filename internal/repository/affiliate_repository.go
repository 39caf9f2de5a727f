package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const uniqueViolation = "23505"

type AffiliateRepository interface {
	CreateCode(ctx context.Context, code *models.AffiliateCode) error
	GetCodeByUser(ctx context.Context, userID uuid.UUID) (*models.AffiliateCode, error)
	GetCode(ctx context.Context, code string) (*models.AffiliateCode, error)
	CreateInvitation(ctx context.Context, inv *models.AffiliateInvitation, invitedBonus decimal.Decimal) error
	GetInvitationByInvited(ctx context.Context, invitedUserID uuid.UUID) (*models.AffiliateInvitation, error)
	GetInvitationsByInviter(ctx context.Context, inviterID uuid.UUID) ([]models.AffiliateInvitation, error)
	PayInviterBonus(ctx context.Context, invitationID, inviterID uuid.UUID, bonus decimal.Decimal) (bool, error)
}

const invitationColumns = `id, inviter_id, invited_user_id, affiliate_code, invited_at, bonus_paid_to_inviter, bonus_paid_to_invited, bonus_paid_at`

func scanInvitation(row rowScanner) (models.AffiliateInvitation, error) {
	var inv models.AffiliateInvitation
	err := row.Scan(&inv.ID, &inv.InviterID, &inv.InvitedUserID, &inv.AffiliateCode, &inv.InvitedAt,
		&inv.BonusPaidToInviter, &inv.BonusPaidToInvited, &inv.BonusPaidAt)
	return inv, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type affiliateRepo struct {
	db *sql.DB
}

func NewAffiliateRepository(db *sql.DB) AffiliateRepository {
	return &affiliateRepo{db: db}
}

func (r *affiliateRepo) CreateCode(ctx context.Context, code *models.AffiliateCode) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO affiliate_codes (user_id, code, created_at) VALUES ($1, $2, $3)`,
		code.UserID, code.Code, code.CreatedAt)
	return err
}

func (r *affiliateRepo) GetCodeByUser(ctx context.Context, userID uuid.UUID) (*models.AffiliateCode, error) {
	return r.getCode(ctx, `SELECT user_id, code, created_at FROM affiliate_codes WHERE user_id = $1`, userID)
}

func (r *affiliateRepo) GetCode(ctx context.Context, code string) (*models.AffiliateCode, error) {
	return r.getCode(ctx, `SELECT user_id, code, created_at FROM affiliate_codes WHERE code = $1`, code)
}

func (r *affiliateRepo) getCode(ctx context.Context, query string, arg any) (*models.AffiliateCode, error) {
	var c models.AffiliateCode
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.UserID, &c.Code, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrAffiliateCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateInvitation records the invitation and pays the invited user's signup bonus atomically.
func (r *affiliateRepo) CreateInvitation(ctx context.Context, inv *models.AffiliateInvitation, invitedBonus decimal.Decimal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO affiliate_invitations (id, inviter_id, invited_user_id, affiliate_code, invited_at, bonus_paid_to_inviter, bonus_paid_to_invited)
		VALUES ($1, $2, $3, $4, $5, false, $6)
	`, inv.ID, inv.InviterID, inv.InvitedUserID, inv.AffiliateCode, inv.InvitedAt, invitedBonus.IsPositive())
	if isUniqueViolation(err) {
		return apperrors.ErrAlreadyInvited
	}
	if err != nil {
		return err
	}

	if invitedBonus.IsPositive() {
		if err := addCredit(ctx, tx, inv.InvitedUserID, invitedBonus); err != nil {
			return err
		}
		inv.BonusPaidToInvited = true
	}

	return tx.Commit()
}

func (r *affiliateRepo) GetInvitationByInvited(ctx context.Context, invitedUserID uuid.UUID) (*models.AffiliateInvitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM affiliate_invitations WHERE invited_user_id = $1`
	inv, err := scanInvitation(r.db.QueryRowContext(ctx, query, invitedUserID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *affiliateRepo) GetInvitationsByInviter(ctx context.Context, inviterID uuid.UUID) ([]models.AffiliateInvitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM affiliate_invitations WHERE inviter_id = $1 ORDER BY invited_at DESC`
	rows, err := r.db.QueryContext(ctx, query, inviterID)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var invitations []models.AffiliateInvitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

// PayInviterBonus flips bonus_paid_to_inviter and credits the inviter. It reports false
// when the bonus had already been paid.
func (r *affiliateRepo) PayInviterBonus(ctx context.Context, invitationID, inviterID uuid.UUID, bonus decimal.Decimal) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer rollback(tx)

	res, err := tx.ExecContext(ctx, `
		UPDATE affiliate_invitations
		SET bonus_paid_to_inviter = true, bonus_paid_at = now()
		WHERE id = $1 AND bonus_paid_to_inviter = false
	`, invitationID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	if err := addCredit(ctx, tx, inviterID, bonus); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
