package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutFeePaid   PayoutStatus = "fee_paid"
	PayoutCompleted PayoutStatus = "completed"
	PayoutRejected  PayoutStatus = "rejected"
)

func (s PayoutStatus) IsOpen() bool {
	return s == PayoutPending || s == PayoutFeePaid
}

type TotalPayoutRequest struct {
	ID                  uuid.UUID        `json:"id" db:"id"`
	UserID              uuid.UUID        `json:"user_id" db:"user_id"`
	FeePercentage       decimal.Decimal  `json:"fee_percentage" db:"fee_percentage"`
	UserBalance         decimal.Decimal  `json:"user_balance" db:"user_balance"`
	PayoutCurrency      *string          `json:"payout_currency,omitempty" db:"payout_currency"`
	PayoutWalletAddress *string          `json:"payout_wallet_address,omitempty" db:"payout_wallet_address"`
	FeePaid             bool             `json:"fee_paid" db:"fee_paid"`
	FeeAmount           *decimal.Decimal `json:"fee_amount,omitempty" db:"fee_amount"`
	Status              PayoutStatus     `json:"status" db:"status"`
	CreatedAt           time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at" db:"updated_at"`
}

type PayoutFeeRequest struct {
	PayoutCurrency      string `json:"payout_currency"`
	PayoutWalletAddress string `json:"payout_wallet_address"`
}
