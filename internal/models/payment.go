package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// IsTerminal reports whether no further transition is expected from s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

func (s Status) IsValid() bool {
	return s == StatusPending || s.IsTerminal()
}

type Payment struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`
	UserEmail      string          `json:"user_email" db:"user_email"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Currency       string          `json:"currency" db:"currency"`
	WalletCurrency string          `json:"wallet_currency" db:"wallet_currency"`
	Status         Status          `json:"status" db:"status"`
	TransactionID  *string         `json:"transaction_id,omitempty" db:"transaction_id"`
	Notes          *string         `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

type PaymentRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	WalletCurrency string          `json:"wallet_currency"`
	TransactionID  *string         `json:"transaction_id,omitempty"`
}

type PaymentStatusUpdate struct {
	Status Status  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}
