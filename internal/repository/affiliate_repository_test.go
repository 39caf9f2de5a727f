package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffiliateRepo_GetCode(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	mock.ExpectQuery("SELECT user_id, code, created_at FROM affiliate_codes WHERE code").WithArgs("ABCD2345").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "code", "created_at"}).AddRow(userID.String(), "ABCD2345", time.Now()))
	mock.ExpectQuery("SELECT user_id, code, created_at FROM affiliate_codes WHERE code").WithArgs("NOPE").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "code", "created_at"}))

	r := NewAffiliateRepository(db)

	code, err := r.GetCode(context.Background(), "ABCD2345")
	require.NoError(t, err)
	assert.Equal(t, userID, code.UserID)

	_, err = r.GetCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, apperrors.ErrAffiliateCodeNotFound)
}

func TestAffiliateRepo_CreateInvitation(t *testing.T) {
	inv := &models.AffiliateInvitation{
		ID: uuid.New(), InviterID: uuid.New(), InvitedUserID: uuid.New(),
		AffiliateCode: "ABCD2345", InvitedAt: time.Now(),
	}

	tests := []struct {
		name    string
		bonus   decimal.Decimal
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:  "бонус приглашенному начисляется",
			bonus: decimal.NewFromInt(25),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO affiliate_invitations").
					WithArgs(inv.ID, inv.InviterID, inv.InvitedUserID, inv.AffiliateCode, inv.InvitedAt, true).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO user_credits").WithArgs(inv.InvitedUserID, decimal.NewFromInt(25)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:  "повторное приглашение",
			bonus: decimal.NewFromInt(25),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO affiliate_invitations").
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
				mock.ExpectRollback()
			},
			wantErr: apperrors.ErrAlreadyInvited,
		},
		{
			name:  "без бонуса",
			bonus: decimal.Zero,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO affiliate_invitations").
					WithArgs(inv.ID, inv.InviterID, inv.InvitedUserID, inv.AffiliateCode, inv.InvitedAt, false).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			err := NewAffiliateRepository(db).CreateInvitation(context.Background(), inv, tt.bonus)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAffiliateRepo_PayInviterBonus(t *testing.T) {
	invID, inviterID := uuid.New(), uuid.New()
	bonus := decimal.NewFromInt(50)

	t.Run("first payment pays the inviter", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE affiliate_invitations").WithArgs(invID).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO user_credits").WithArgs(inviterID, bonus).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		paid, err := NewAffiliateRepository(db).PayInviterBonus(context.Background(), invID, inviterID, bonus)
		require.NoError(t, err)
		assert.True(t, paid)
	})

	t.Run("bonus already paid", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE affiliate_invitations").WithArgs(invID).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		paid, err := NewAffiliateRepository(db).PayInviterBonus(context.Background(), invID, inviterID, bonus)
		require.NoError(t, err)
		assert.False(t, paid)
	})
}

func TestAffiliateRepo_GetInvitationByInvited_None(t *testing.T) {
	db, mock := newMockDB(t)
	invited := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM affiliate_invitations WHERE invited_user_id").WithArgs(invited).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	inv, err := NewAffiliateRepository(db).GetInvitationByInvited(context.Background(), invited)
	require.NoError(t, err)
	assert.Nil(t, inv)
}
