package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Withdrawal struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`
	UserEmail      string          `json:"user_email" db:"user_email"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Currency       string          `json:"currency" db:"currency"`
	WalletCurrency string          `json:"wallet_currency" db:"wallet_currency"`
	WalletAddress  string          `json:"wallet_address" db:"wallet_address"`
	Status         Status          `json:"status" db:"status"`
	Notes          *string         `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

type WithdrawalRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	WalletCurrency string          `json:"wallet_currency"`
	WalletAddress  string          `json:"wallet_address"`
}
