package middleware

import (
	"context"
	"net/http"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoleChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AdminOnly must run after JWTMiddleware.
func AdminOnly(roles RoleChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			admin, err := roles.IsAdmin(r.Context(), userID)
			if err != nil {
				logger.Log.Error("role lookup failed", zap.Stringer("user", userID), zap.Error(err))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			if !admin {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
