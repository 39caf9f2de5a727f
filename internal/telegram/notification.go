package telegram

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"
)

type NotificationType string

const (
	TypeLead       NotificationType = "lead"
	TypePayment    NotificationType = "payment"
	TypeWithdrawal NotificationType = "withdrawal"
	TypeTest       NotificationType = "test"
)

var ErrValidation = errors.New("invalid notification")

// Notification is the payload accepted by the relay. Which fields are required depends on Type.
type Notification struct {
	Type           NotificationType `json:"type"`
	Name           string           `json:"name,omitempty"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Message        string           `json:"message,omitempty"`
	Amount         decimal.Decimal  `json:"amount,omitempty"`
	Currency       string           `json:"currency,omitempty"`
	WalletCurrency string           `json:"walletCurrency,omitempty"`
	WalletAddress  string           `json:"walletAddress,omitempty"`
	UserEmail      string           `json:"userEmail,omitempty"`
	TransactionID  string           `json:"transactionId,omitempty"`
}

func missing(fields ...string) error {
	return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(fields, ", "))
}

func (n Notification) Validate() error {
	var absent []string
	require := func(ok bool, field string) {
		if !ok {
			absent = append(absent, field)
		}
	}

	switch n.Type {
	case TypeLead:
		require(strings.TrimSpace(n.Name) != "", "name")
		require(strings.TrimSpace(n.Email) != "", "email")
	case TypePayment:
		require(n.Amount.IsPositive(), "amount")
		require(n.WalletCurrency != "", "walletCurrency")
		require(n.UserEmail != "", "userEmail")
	case TypeWithdrawal:
		require(n.Amount.IsPositive(), "amount")
		require(n.WalletCurrency != "", "walletCurrency")
		require(n.WalletAddress != "", "walletAddress")
		require(n.UserEmail != "", "userEmail")
	case TypeTest:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrValidation, n.Type)
	}

	if len(absent) > 0 {
		return missing(absent...)
	}
	return nil
}

// Format renders the notification as a Telegram HTML message.
func (n Notification) Format() string {
	var sb strings.Builder

	line := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&sb, "<b>%s:</b> %s\n", label, html.EscapeString(value))
	}
	amount := ""
	if !n.Amount.IsZero() {
		amount = n.Amount.String()
		if n.Currency != "" {
			amount += " " + n.Currency
		}
	}

	switch n.Type {
	case TypeLead:
		sb.WriteString("📩 <b>Neuer Lead</b>\n\n")
		line("Name", n.Name)
		line("E-Mail", n.Email)
		line("Telefon", n.Phone)
		line("Nachricht", n.Message)
	case TypePayment:
		sb.WriteString("💰 <b>Neue Einzahlung</b>\n\n")
		line("Betrag", amount)
		line("Wallet-Währung", n.WalletCurrency)
		line("Benutzer", n.UserEmail)
		line("Transaktion", n.TransactionID)
	case TypeWithdrawal:
		sb.WriteString("🏦 <b>Neue Auszahlungsanfrage</b>\n\n")
		line("Betrag", amount)
		line("Wallet-Währung", n.WalletCurrency)
		line("Wallet-Adresse", n.WalletAddress)
		line("Benutzer", n.UserEmail)
	case TypeTest:
		sb.WriteString("✅ <b>Testnachricht</b>\n\n")
		line("Nachricht", n.Message)
	}

	return strings.TrimRight(sb.String(), "\n")
}
