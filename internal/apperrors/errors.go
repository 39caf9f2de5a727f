package apperrors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidAuthHeader  = errors.New("invalid or missing Authorization header")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrForbidden          = errors.New("forbidden")

	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidCurrency      = errors.New("currency is required")
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInsufficientFunds    = errors.New("insufficient funds")

	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentFinal    = errors.New("payment already in terminal state")

	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrWithdrawalFinal    = errors.New("withdrawal already in terminal state")

	ErrAffiliateCodeNotFound = errors.New("affiliate code not found")
	ErrAffiliateSelfInvite   = errors.New("affiliate code belongs to the invited user")
	ErrAlreadyInvited        = errors.New("user already invited")

	ErrPayoutNotFound     = errors.New("total payout request not found")
	ErrPayoutExists       = errors.New("open total payout request already exists")
	ErrInvalidFee         = errors.New("fee percentage must be between 0 and 100")
	ErrPayoutFeeNotPaid   = errors.New("payout fee not paid")
	ErrPayoutFinal        = errors.New("total payout request already closed")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUnknownProcedure   = errors.New("unknown procedure")
	ErrInvalidLead        = errors.New("name and email are required")
	ErrNotificationFailed = errors.New("notification delivery failed")
)
