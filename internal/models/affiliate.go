package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AffiliateCode struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Code      string    `json:"code" db:"code"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type AffiliateInvitation struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	InviterID          uuid.UUID  `json:"inviter_id" db:"inviter_id"`
	InvitedUserID      uuid.UUID  `json:"invited_user_id" db:"invited_user_id"`
	AffiliateCode      string     `json:"affiliate_code" db:"affiliate_code"`
	InvitedAt          time.Time  `json:"invited_at" db:"invited_at"`
	BonusPaidToInviter bool       `json:"bonus_paid_to_inviter" db:"bonus_paid_to_inviter"`
	BonusPaidToInvited bool       `json:"bonus_paid_to_invited" db:"bonus_paid_to_invited"`
	BonusPaidAt        *time.Time `json:"bonus_paid_at,omitempty" db:"bonus_paid_at"`
}

type AffiliateStatistics struct {
	Code             string                `json:"code,omitempty"`
	TotalInvitations int                   `json:"total_invitations"`
	PaidInvitations  int                   `json:"paid_invitations"`
	BonusEarned      decimal.Decimal       `json:"bonus_earned"`
	Invitations      []AffiliateInvitation `json:"invitations"`
}
