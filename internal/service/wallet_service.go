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
)

type WalletService interface {
	AddWallet(ctx context.Context, userID uuid.UUID, currency, address, label string) (*models.CryptoWallet, error)
	GetWallets(ctx context.Context, userID uuid.UUID) ([]models.CryptoWallet, error)
}

type walletService struct {
	repo repository.WalletRepository
}

func NewWalletService(repo repository.WalletRepository) WalletService {
	return &walletService{repo: repo}
}

func (s *walletService) AddWallet(ctx context.Context, userID uuid.UUID, currency, address, label string) (*models.CryptoWallet, error) {
	currency = utils.NormalizeCurrency(currency)
	if currency == "" {
		return nil, apperrors.ErrInvalidCurrency
	}
	if !utils.IsValidWalletAddress(address) {
		return nil, apperrors.ErrInvalidWalletAddress
	}

	w := &models.CryptoWallet{
		ID:        uuid.New(),
		UserID:    userID,
		Currency:  currency,
		Address:   address,
		Label:     strings.TrimSpace(label),
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateWallet(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *walletService) GetWallets(ctx context.Context, userID uuid.UUID) ([]models.CryptoWallet, error) {
	return s.repo.GetWalletsByUser(ctx, userID)
}
