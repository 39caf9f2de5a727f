package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	AffiliateCodeLength   = 8
	affiliateCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// GenerateAffiliateCode returns a random code over an alphabet without look-alike characters.
func GenerateAffiliateCode() (string, error) {
	var sb strings.Builder
	sb.Grow(AffiliateCodeLength)

	limit := big.NewInt(int64(len(affiliateCodeAlphabet)))
	for i := 0; i < AffiliateCodeLength; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(affiliateCodeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

func IsValidAffiliateCode(code string) bool {
	if len(code) != AffiliateCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(affiliateCodeAlphabet, rune(code[i])) {
			return false
		}
	}
	return true
}

// NormalizeAffiliateCode accepts user input in any case with surrounding blanks.
func NormalizeAffiliateCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
