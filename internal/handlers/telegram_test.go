package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/a2sh3r/aitrade/internal/hash"
	"github.com/a2sh3r/aitrade/internal/middleware"
	"github.com/a2sh3r/aitrade/internal/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// botAPI records sendMessage calls the way the Telegram Bot API receives them.
type botAPI struct {
	mu    sync.Mutex
	texts []string
}

func (b *botAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChatID string `json:"chat_id"`
		Text   string `json:"text"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	b.mu.Lock()
	b.texts = append(b.texts, req.Text)
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
}

func (b *botAPI) sent() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.texts...)
}

func newRelayRouter(t *testing.T, relayKey string) (http.Handler, *botAPI) {
	t.Helper()

	api := &botAPI{}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	relay := telegram.NewRelay(telegram.NewClient(srv.URL, "token"), []string{"100"})
	h := NewHandler(Deps{Relay: relay, SecretKey: "test"})
	return NewRouter(h, RouterConfig{SecretKey: "test", RelayKey: relayKey}), api
}

func postNotification(router http.Handler, body string, headers map[string]string) (*httptest.ResponseRecorder, relayResponse) {
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/telegram-notify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp relayResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestTelegramNotify_WithdrawalEndToEnd(t *testing.T) {
	router, api := newRelayRouter(t, "")

	w, resp := postNotification(router,
		`{"type":"withdrawal","amount":100,"walletCurrency":"btc","walletAddress":"abc","userEmail":"a@b.com"}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Delivered)

	sent := api.sent()
	require.Len(t, sent, 1)
	for _, field := range []string{"100", "btc", "abc", "a@b.com"} {
		assert.Contains(t, sent[0], field)
	}
}

func TestTelegramNotify_ValidationFailureSendsNothing(t *testing.T) {
	router, api := newRelayRouter(t, "")

	w, resp := postNotification(router,
		`{"type":"withdrawal","amount":100,"walletCurrency":"btc","userEmail":"a@b.com"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "walletAddress")
	assert.Empty(t, api.sent())
}

func TestTelegramNotify_Envelopes(t *testing.T) {
	router, api := newRelayRouter(t, "")

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "malformed json", body: `{"type":`, wantStatus: http.StatusBadRequest},
		{name: "unknown type", body: `{"type":"spam"}`, wantStatus: http.StatusBadRequest},
		{name: "lead without email", body: `{"type":"lead","name":"Max"}`, wantStatus: http.StatusBadRequest},
		{name: "test message", body: `{"type":"test"}`, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := postNotification(router, tt.body, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, resp.Success)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
	assert.Len(t, api.sent(), 1)
}

func TestTelegramNotify_Signature(t *testing.T) {
	router, api := newRelayRouter(t, "relay-key")
	body := `{"type":"test"}`

	w, _ := postNotification(router, body, map[string]string{middleware.HashHeader: hash.CalculateHash(body, "relay-key")})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = postNotification(router, body, map[string]string{middleware.HashHeader: hash.CalculateHash(body, "wrong")})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, api.sent(), 1)
}

type panickingRelay struct{}

func (panickingRelay) Deliver(context.Context, telegram.Notification) (int, error) {
	panic("boom")
}

func TestTelegramNotify_PanicBecomesJSON500(t *testing.T) {
	h := NewHandler(Deps{Relay: panickingRelay{}})

	w := httptest.NewRecorder()
	h.TelegramNotify(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"type":"test"}`)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp relayResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
