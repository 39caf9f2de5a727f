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

type PaymentService interface {
	CreatePayment(ctx context.Context, userID uuid.UUID, req models.PaymentRequest) (*models.Payment, error)
	GetPayments(ctx context.Context, userID uuid.UUID) ([]models.Payment, error)
	GetPayment(ctx context.Context, userID, paymentID uuid.UUID) (*models.Payment, error)
	ListPayments(ctx context.Context, status models.Status) ([]models.Payment, error)
	SetStatus(ctx context.Context, paymentID uuid.UUID, status models.Status, notes *string) (*models.Payment, error)
}

type paymentService struct {
	repo      repository.PaymentRepository
	users     repository.UserRepository
	affiliate AffiliateService
	notifier  Notifier
}

func NewPaymentService(repo repository.PaymentRepository, users repository.UserRepository, affiliate AffiliateService, notifier Notifier) PaymentService {
	return &paymentService{repo: repo, users: users, affiliate: affiliate, notifier: orNop(notifier)}
}

func (s *paymentService) CreatePayment(ctx context.Context, userID uuid.UUID, req models.PaymentRequest) (*models.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	walletCurrency := utils.NormalizeCurrency(req.WalletCurrency)
	if currency == "" || walletCurrency == "" {
		return nil, apperrors.ErrInvalidCurrency
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var txID *string
	if req.TransactionID != nil && strings.TrimSpace(*req.TransactionID) != "" {
		id := strings.TrimSpace(*req.TransactionID)
		txID = &id
	}

	now := time.Now()
	payment := &models.Payment{
		ID:             uuid.New(),
		UserID:         userID,
		UserEmail:      user.Email,
		Amount:         req.Amount,
		Currency:       currency,
		WalletCurrency: walletCurrency,
		Status:         models.StatusPending,
		TransactionID:  txID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	n := telegram.Notification{
		Type:           telegram.TypePayment,
		Amount:         payment.Amount,
		Currency:       payment.Currency,
		WalletCurrency: payment.WalletCurrency,
		UserEmail:      payment.UserEmail,
	}
	if txID != nil {
		n.TransactionID = *txID
	}
	s.notifier.Notify(ctx, n)

	return payment, nil
}

func (s *paymentService) GetPayments(ctx context.Context, userID uuid.UUID) ([]models.Payment, error) {
	return s.repo.GetPaymentsByUser(ctx, userID)
}

func (s *paymentService) GetPayment(ctx context.Context, userID, paymentID uuid.UUID) (*models.Payment, error) {
	return s.repo.GetPayment(ctx, userID, paymentID)
}

func (s *paymentService) ListPayments(ctx context.Context, status models.Status) ([]models.Payment, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	return s.repo.ListPayments(ctx, status)
}

// SetStatus performs the single pending -> terminal transition. The balance is credited by the
// repository in the same transaction, the inviter bonus is settled afterwards.
func (s *paymentService) SetStatus(ctx context.Context, paymentID uuid.UUID, status models.Status, notes *string) (*models.Payment, error) {
	if !status.IsTerminal() {
		return nil, apperrors.ErrInvalidStatus
	}

	payment, err := s.repo.UpdatePaymentStatus(ctx, paymentID, status, notes)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("payment status changed", zap.Stringer("payment", paymentID), zap.String("status", string(status)))

	if s.affiliate != nil {
		if err := s.affiliate.SettleInviterBonus(ctx, payment); err != nil {
			logger.Log.Error("failed to settle inviter bonus", zap.Stringer("payment", paymentID), zap.Error(err))
		}
	}
	return payment, nil
}
