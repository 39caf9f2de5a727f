package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouter_Routes(t *testing.T) {
	handler, _ := newTestHandler(t)
	handler.sessions = newSessionStore(t)
	router := NewRouter(handler, RouterConfig{SecretKey: "testsecret"})

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/api/user/payments", http.StatusUnauthorized},
		{"GET", "/api/user/payments/x/flow", http.StatusUnauthorized},
		{"POST", "/rest/v1/rpc/get_all_withdrawals", http.StatusUnauthorized},
		{"PATCH", "/api/admin/payments/x", http.StatusUnauthorized},
		{"POST", "/api/auth/signup", http.StatusBadRequest},
		{"POST", "/api/auth/signin", http.StatusBadRequest},
		{"POST", "/api/leads", http.StatusBadRequest},
		{"POST", "/functions/v1/telegram-notify", http.StatusBadRequest},
		{"GET", "/metrics", http.StatusOK},
		{"GET", "/notfound", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		resp := w.Result()
		if resp.StatusCode != tt.status {
			t.Errorf("%s %s: got %d, want %d", tt.method, tt.path, resp.StatusCode, tt.status)
		}
		_ = resp.Body.Close()
	}
}
