package service

import (
	"context"
	"strings"
	"time"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/a2sh3r/aitrade/internal/repository"
	"github.com/a2sh3r/aitrade/internal/telegram"
	"github.com/a2sh3r/aitrade/internal/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WithdrawalService interface {
	CreateWithdrawal(ctx context.Context, userID uuid.UUID, req models.WithdrawalRequest) (*models.Withdrawal, error)
	GetWithdrawals(ctx context.Context, userID uuid.UUID) ([]models.Withdrawal, error)
	GetAllWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	ProcessStatus(ctx context.Context, withdrawalID uuid.UUID, status models.Status, notes *string) (*models.Withdrawal, error)
}

type withdrawalService struct {
	repo     repository.WithdrawalRepository
	credits  repository.CreditRepository
	users    repository.UserRepository
	notifier Notifier
}

func NewWithdrawalService(repo repository.WithdrawalRepository, credits repository.CreditRepository, users repository.UserRepository, notifier Notifier) WithdrawalService {
	return &withdrawalService{repo: repo, credits: credits, users: users, notifier: orNop(notifier)}
}

func (s *withdrawalService) CreateWithdrawal(ctx context.Context, userID uuid.UUID, req models.WithdrawalRequest) (*models.Withdrawal, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	walletCurrency := utils.NormalizeCurrency(req.WalletCurrency)
	if walletCurrency == "" {
		return nil, apperrors.ErrInvalidCurrency
	}
	if !utils.IsValidWalletAddress(req.WalletAddress) {
		return nil, apperrors.ErrInvalidWalletAddress
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "EUR"
	}

	credit, err := s.credits.GetCredit(ctx, userID)
	if err != nil {
		return nil, err
	}
	// checked again when the withdrawal completes, the balance may change in between
	if req.Amount.GreaterThan(credit.Amount) {
		return nil, apperrors.ErrInsufficientFunds
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	w := &models.Withdrawal{
		ID:             uuid.New(),
		UserID:         userID,
		UserEmail:      user.Email,
		Amount:         req.Amount,
		Currency:       currency,
		WalletCurrency: walletCurrency,
		WalletAddress:  req.WalletAddress,
		Status:         models.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.CreateWithdrawal(ctx, w); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, telegram.Notification{
		Type:           telegram.TypeWithdrawal,
		Amount:         w.Amount,
		Currency:       w.Currency,
		WalletCurrency: w.WalletCurrency,
		WalletAddress:  w.WalletAddress,
		UserEmail:      w.UserEmail,
	})

	return w, nil
}

func (s *withdrawalService) GetWithdrawals(ctx context.Context, userID uuid.UUID) ([]models.Withdrawal, error) {
	return s.repo.GetWithdrawalsByUser(ctx, userID)
}

func (s *withdrawalService) GetAllWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	return s.repo.GetAllWithdrawals(ctx)
}

func (s *withdrawalService) ProcessStatus(ctx context.Context, withdrawalID uuid.UUID, status models.Status, notes *string) (*models.Withdrawal, error) {
	if !status.IsTerminal() {
		return nil, apperrors.ErrInvalidStatus
	}

	w, err := s.repo.ProcessWithdrawalStatus(ctx, withdrawalID, status, notes)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("withdrawal processed", zap.Stringer("withdrawal", withdrawalID), zap.String("status", string(status)))
	return w, nil
}
