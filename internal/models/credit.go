package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserCredit struct {
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	LastUpdated time.Time       `json:"last_updated" db:"last_updated"`
}

type BonusRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
