package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/a2sh3r/aitrade/internal/hash"
	"github.com/a2sh3r/aitrade/internal/logger"
	"go.uber.org/zap"
)

const HashHeader = "HashSHA256"

// WithHashCheck rejects requests whose body does not match the HashSHA256 header.
// An empty key disables the check.
func WithHashCheck(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "failed to read body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if err := hash.VerifyHash(string(body), key, r.Header.Get(HashHeader)); err != nil {
				logger.Log.Warn("request signature mismatch", zap.String("path", r.URL.Path))
				http.Error(w, "invalid signature", http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
