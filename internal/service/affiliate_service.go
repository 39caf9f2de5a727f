package service

import (
	"context"
	"errors"
	"time"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/a2sh3r/aitrade/internal/repository"
	"github.com/a2sh3r/aitrade/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	InvitedBonus = decimal.NewFromInt(25)
	InviterBonus = decimal.NewFromInt(50)
)

const codeAttempts = 5

type AffiliateService interface {
	GetOrCreateCode(ctx context.Context, userID uuid.UUID) (*models.AffiliateCode, error)
	ProcessInvitation(ctx context.Context, code string, invitedUserID uuid.UUID) (*models.AffiliateInvitation, error)
	GetStatistics(ctx context.Context, userID uuid.UUID) (*models.AffiliateStatistics, error)
	SettleInviterBonus(ctx context.Context, payment *models.Payment) error
}

type affiliateService struct {
	repo      repository.AffiliateRepository
	threshold decimal.Decimal
}

// NewAffiliateService pays the inviter once the invited user's completed deposit reaches threshold.
func NewAffiliateService(repo repository.AffiliateRepository, threshold decimal.Decimal) AffiliateService {
	return &affiliateService{repo: repo, threshold: threshold}
}

func (s *affiliateService) GetOrCreateCode(ctx context.Context, userID uuid.UUID) (*models.AffiliateCode, error) {
	code, err := s.repo.GetCodeByUser(ctx, userID)
	if err == nil {
		return code, nil
	}
	if !errors.Is(err, apperrors.ErrAffiliateCodeNotFound) {
		return nil, err
	}

	for attempt := 0; attempt < codeAttempts; attempt++ {
		generated, err := utils.GenerateAffiliateCode()
		if err != nil {
			return nil, err
		}

		code = &models.AffiliateCode{UserID: userID, Code: generated, CreatedAt: time.Now()}
		if err = s.repo.CreateCode(ctx, code); err == nil {
			return code, nil
		}

		// either the code collided or a concurrent request created one for this user
		if existing, getErr := s.repo.GetCodeByUser(ctx, userID); getErr == nil {
			return existing, nil
		}
		logger.Log.Warn("affiliate code creation failed, retrying", zap.Int("attempt", attempt+1), zap.Error(err))
	}
	return nil, apperrors.ErrInternalServer
}

func (s *affiliateService) ProcessInvitation(ctx context.Context, code string, invitedUserID uuid.UUID) (*models.AffiliateInvitation, error) {
	code = utils.NormalizeAffiliateCode(code)
	if !utils.IsValidAffiliateCode(code) {
		return nil, apperrors.ErrAffiliateCodeNotFound
	}

	owner, err := s.repo.GetCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if owner.UserID == invitedUserID {
		return nil, apperrors.ErrAffiliateSelfInvite
	}

	existing, err := s.repo.GetInvitationByInvited(ctx, invitedUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyInvited
	}

	inv := &models.AffiliateInvitation{
		ID:            uuid.New(),
		InviterID:     owner.UserID,
		InvitedUserID: invitedUserID,
		AffiliateCode: code,
		InvitedAt:     time.Now(),
	}
	if err := s.repo.CreateInvitation(ctx, inv, InvitedBonus); err != nil {
		return nil, err
	}

	logger.Log.Info("affiliate invitation recorded", zap.Stringer("inviter", inv.InviterID), zap.Stringer("invited", invitedUserID))
	return inv, nil
}

func (s *affiliateService) GetStatistics(ctx context.Context, userID uuid.UUID) (*models.AffiliateStatistics, error) {
	stats := &models.AffiliateStatistics{BonusEarned: decimal.Zero, Invitations: []models.AffiliateInvitation{}}

	code, err := s.repo.GetCodeByUser(ctx, userID)
	switch {
	case err == nil:
		stats.Code = code.Code
	case !errors.Is(err, apperrors.ErrAffiliateCodeNotFound):
		return nil, err
	}

	invitations, err := s.repo.GetInvitationsByInviter(ctx, userID)
	if err != nil {
		return nil, err
	}
	if invitations != nil {
		stats.Invitations = invitations
	}

	stats.TotalInvitations = len(invitations)
	for _, inv := range invitations {
		if inv.BonusPaidToInviter {
			stats.PaidInvitations++
		}
	}
	stats.BonusEarned = InviterBonus.Mul(decimal.NewFromInt(int64(stats.PaidInvitations)))
	return stats, nil
}

func (s *affiliateService) SettleInviterBonus(ctx context.Context, payment *models.Payment) error {
	if payment.Status != models.StatusCompleted || payment.Amount.LessThan(s.threshold) {
		return nil
	}

	inv, err := s.repo.GetInvitationByInvited(ctx, payment.UserID)
	if err != nil {
		return err
	}
	if inv == nil || inv.BonusPaidToInviter {
		return nil
	}

	paid, err := s.repo.PayInviterBonus(ctx, inv.ID, inv.InviterID, InviterBonus)
	if err != nil {
		return err
	}
	if paid {
		logger.Log.Info("inviter bonus paid", zap.Stringer("inviter", inv.InviterID), zap.Stringer("payment", payment.ID))
	}
	return nil
}
