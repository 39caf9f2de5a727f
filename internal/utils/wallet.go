package utils

import "strings"

const (
	minWalletAddressLength = 20
	maxWalletAddressLength = 128
)

// IsValidWalletAddress only checks the shape of an address string. Addresses are stored, never used
// to move funds, so there is no per-chain checksum validation.
func IsValidWalletAddress(address string) bool {
	if address != strings.TrimSpace(address) {
		return false
	}
	if len(address) < minWalletAddressLength || len(address) > maxWalletAddressLength {
		return false
	}
	for _, r := range address {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == ':' || r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

func NormalizeCurrency(currency string) string {
	return strings.ToLower(strings.TrimSpace(currency))
}
