package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	SessionIDKey contextKey = "sid"
)

type Claims struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// IssueToken signs a token bound to the session sid.
func IssueToken(secretKey string, userID uuid.UUID, sid string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID.String(),
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
}

func ParseToken(secretKey, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		// browsers cannot set headers on a websocket handshake
		if token := r.URL.Query().Get("access_token"); token != "" {
			return token, nil
		}
		return "", apperrors.ErrInvalidAuthHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", apperrors.ErrInvalidAuthHeader
	}
	return parts[1], nil
}

// JWTMiddleware accepts a token only while its session is still present in the store.
func JWTMiddleware(secretKey string, sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r)
			if err != nil {
				http.Error(w, "authorization header format must be Bearer {token}", http.StatusUnauthorized)
				return
			}

			claims, err := ParseToken(secretKey, tokenString)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				http.Error(w, "invalid user_id format in token claims", http.StatusUnauthorized)
				return
			}

			if sessions != nil {
				owner, err := sessions.Get(r.Context(), claims.SessionID)
				switch {
				case errors.Is(err, apperrors.ErrSessionNotFound):
					http.Error(w, "session expired", http.StatusUnauthorized)
					return
				case err != nil:
					logger.Log.Error("session lookup failed", zap.Error(err))
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				case owner != userID:
					http.Error(w, "invalid token", http.StatusUnauthorized)
					return
				}
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, SessionIDKey, claims.SessionID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}

func GetSessionID(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(SessionIDKey).(string)
	return sid, ok
}

// WithUserID is used by tests and internal callers that authenticate by other means.
func WithUserID(ctx context.Context, userID uuid.UUID, sid string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, SessionIDKey, sid)
}
