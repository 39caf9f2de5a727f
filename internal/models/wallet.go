package models

import (
	"time"

	"github.com/google/uuid"
)

type CryptoWallet struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Currency  string    `json:"currency" db:"currency"`
	Address   string    `json:"address" db:"address"`
	Label     string    `json:"label,omitempty" db:"label"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
