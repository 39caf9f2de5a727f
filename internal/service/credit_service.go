package service

import (
	"context"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/a2sh3r/aitrade/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreditService interface {
	GetCredit(ctx context.Context, userID uuid.UUID) (models.UserCredit, error)
	GrantBonus(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (models.UserCredit, error)
}

type creditService struct {
	repo  repository.CreditRepository
	users repository.UserRepository
}

func NewCreditService(repo repository.CreditRepository, users repository.UserRepository) CreditService {
	return &creditService{repo: repo, users: users}
}

func (s *creditService) GetCredit(ctx context.Context, userID uuid.UUID) (models.UserCredit, error) {
	return s.repo.GetCredit(ctx, userID)
}

func (s *creditService) GrantBonus(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (models.UserCredit, error) {
	if !amount.IsPositive() {
		return models.UserCredit{}, apperrors.ErrInvalidAmount
	}
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return models.UserCredit{}, err
	}

	if err := s.repo.AddCredit(ctx, userID, amount); err != nil {
		return models.UserCredit{}, err
	}
	logger.Log.Info("bonus granted", zap.Stringer("user", userID), zap.Stringer("amount", amount))

	return s.repo.GetCredit(ctx, userID)
}
