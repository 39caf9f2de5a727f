package service

import (
	"context"
	"strings"
	"time"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/a2sh3r/aitrade/internal/repository"
	"github.com/a2sh3r/aitrade/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type PayoutService interface {
	CreateRequest(ctx context.Context, userID uuid.UUID, feePercentage decimal.Decimal) (*models.TotalPayoutRequest, error)
	GetPayouts(ctx context.Context, userID uuid.UUID) ([]models.TotalPayoutRequest, error)
	PayFee(ctx context.Context, userID, payoutID uuid.UUID, req models.PayoutFeeRequest) (*models.TotalPayoutRequest, error)
	UpdateStatus(ctx context.Context, payoutID uuid.UUID, status models.PayoutStatus) (*models.TotalPayoutRequest, error)
}

type payoutService struct {
	repo    repository.PayoutRepository
	credits repository.CreditRepository
	users   repository.UserRepository
}

func NewPayoutService(repo repository.PayoutRepository, credits repository.CreditRepository, users repository.UserRepository) PayoutService {
	return &payoutService{repo: repo, credits: credits, users: users}
}

// CreateRequest snapshots the user's balance and the fee owed on it.
func (s *payoutService) CreateRequest(ctx context.Context, userID uuid.UUID, feePercentage decimal.Decimal) (*models.TotalPayoutRequest, error) {
	if !feePercentage.IsPositive() || !feePercentage.LessThan(hundred) {
		return nil, apperrors.ErrInvalidFee
	}
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	credit, err := s.credits.GetCredit(ctx, userID)
	if err != nil {
		return nil, err
	}

	fee := credit.Amount.Mul(feePercentage).Div(hundred).Round(2)
	now := time.Now()
	p := &models.TotalPayoutRequest{
		ID:            uuid.New(),
		UserID:        userID,
		FeePercentage: feePercentage,
		UserBalance:   credit.Amount,
		FeeAmount:     &fee,
		Status:        models.PayoutPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreatePayout(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *payoutService) GetPayouts(ctx context.Context, userID uuid.UUID) ([]models.TotalPayoutRequest, error) {
	return s.repo.GetPayoutsByUser(ctx, userID)
}

func (s *payoutService) PayFee(ctx context.Context, userID, payoutID uuid.UUID, req models.PayoutFeeRequest) (*models.TotalPayoutRequest, error) {
	currency := utils.NormalizeCurrency(req.PayoutCurrency)
	if currency == "" {
		return nil, apperrors.ErrInvalidCurrency
	}
	address := strings.TrimSpace(req.PayoutWalletAddress)
	if !utils.IsValidWalletAddress(address) {
		return nil, apperrors.ErrInvalidWalletAddress
	}
	return s.repo.MarkFeePaid(ctx, payoutID, userID, currency, address)
}

func (s *payoutService) UpdateStatus(ctx context.Context, payoutID uuid.UUID, status models.PayoutStatus) (*models.TotalPayoutRequest, error) {
	if status != models.PayoutCompleted && status != models.PayoutRejected {
		return nil, apperrors.ErrInvalidStatus
	}
	return s.repo.UpdatePayoutStatus(ctx, payoutID, status)
}
