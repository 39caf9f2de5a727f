package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/middleware"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/a2sh3r/aitrade/internal/session"
	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionStore(t *testing.T) *session.RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return session.NewRedisStore(client, time.Hour)
}

func TestHandler_SignUp(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m mocks)
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"email":"user@example.com","password":"pass","affiliate_code":"ABCD2345"}`,
			mockSetup: func(m mocks) {
				m.users.EXPECT().Register(gomock.Any(), "user@example.com", "pass", "ABCD2345").
					Return(&models.User{ID: userID, Email: "user@example.com", Password: "hash"}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "user already exists",
			body: `{"email":"user@example.com","password":"pass"}`,
			mockSetup: func(m mocks) {
				m.users.EXPECT().Register(gomock.Any(), "user@example.com", "pass", "").Return(nil, apperrors.ErrUserAlreadyExists)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:           "invalid json",
			body:           `{"email":""}`,
			mockSetup:      func(mocks) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"email":"user@example.com","password":"pass"}`,
			mockSetup: func(m mocks) {
				m.users.EXPECT().Register(gomock.Any(), "user@example.com", "pass", "").Return(nil, errors.New("fail"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			h.sessions = newSessionStore(t)
			tt.mockSetup(m)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			h.SignUp(w, req)

			require.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantStatusCode != http.StatusOK {
				return
			}

			var resp authResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Empty(t, resp.User.Password)

			claims, err := middleware.ParseToken("test", resp.Token)
			require.NoError(t, err)
			assert.Equal(t, userID.String(), claims.UserID)

			active, err := h.sessions.IsActive(req.Context(), claims.SessionID)
			require.NoError(t, err)
			assert.True(t, active)
		})
	}
}

func TestHandler_SignIn(t *testing.T) {
	h, m := newTestHandler(t)
	h.sessions = newSessionStore(t)

	userID := uuid.New()
	m.users.EXPECT().Authenticate(gomock.Any(), "user@example.com", "pass").Return(&models.User{ID: userID}, nil)
	m.users.EXPECT().Authenticate(gomock.Any(), "user@example.com", "wrong").Return(nil, apperrors.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	h.SignIn(w, httptest.NewRequest(http.MethodPost, "/api/auth/signin", bytes.NewBufferString(`{"email":"user@example.com","password":"pass"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("Authorization"))

	w = httptest.NewRecorder()
	h.SignIn(w, httptest.NewRequest(http.MethodPost, "/api/auth/signin", bytes.NewBufferString(`{"email":"user@example.com","password":"wrong"}`)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_SignOutRevokesSession(t *testing.T) {
	h, m := newTestHandler(t)
	store := newSessionStore(t)
	h.sessions = store

	userID := uuid.New()
	sid, err := store.Create(t.Context(), userID)
	require.NoError(t, err)
	token, err := middleware.IssueToken("test", userID, sid, time.Hour)
	require.NoError(t, err)

	m.users.EXPECT().GetUserByID(gomock.Any(), userID).Return(&models.User{ID: userID, Email: "user@example.com"}, nil)
	m.users.EXPECT().GetRoles(gomock.Any(), userID).Return([]string{models.RoleUser}, nil)

	router := NewRouter(h, RouterConfig{SecretKey: "test"})
	do := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodGet, "/api/auth/session")
	require.Equal(t, http.StatusOK, w.Code)
	var s models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.True(t, s.Active)
	assert.Equal(t, []string{models.RoleUser}, s.Roles)

	assert.Equal(t, http.StatusNoContent, do(http.MethodPost, "/api/auth/signout").Code)
	assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/api/auth/session").Code)
}
