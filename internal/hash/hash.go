package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrHashMismatch = errors.New("hash mismatch")

// CalculateHash returns the hex HMAC-SHA256 of data, or an empty string when no key is set.
func CalculateHash(data, key string) string {
	if key == "" {
		return ""
	}
	h := hmac.New(sha256.New, []byte(key))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func VerifyHash(data, key, hash string) error {
	if key == "" {
		return nil
	}
	got, err := hex.DecodeString(hash)
	if err != nil {
		return ErrHashMismatch
	}
	want, _ := hex.DecodeString(CalculateHash(data, key))
	if !hmac.Equal(got, want) {
		return ErrHashMismatch
	}
	return nil
}
