package processor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestClient_GetTransaction(t *testing.T) {
	logger.Log = zap.NewNop()

	type want struct {
		resp       *TransactionResponse
		statusCode int
		err        bool
	}
	tests := []struct {
		name           string
		serverResponse string
		serverStatus   int
		want           want
	}{
		{
			name:           "подтвержденная транзакция",
			serverResponse: `{"transaction":"tx-1","status":"CONFIRMED","amount":300.5}`,
			serverStatus:   http.StatusOK,
			want: want{
				resp:       &TransactionResponse{Transaction: "tx-1", Status: StatusConfirmed, Amount: decimalPtr("300.5")},
				statusCode: http.StatusOK,
			},
		},
		{
			name:           "транзакция в обработке",
			serverResponse: `{"transaction":"tx-1","status":"PENDING"}`,
			serverStatus:   http.StatusOK,
			want: want{
				resp:       &TransactionResponse{Transaction: "tx-1", Status: StatusPending},
				statusCode: http.StatusOK,
			},
		},
		{
			name:         "нет данных",
			serverStatus: http.StatusNoContent,
			want:         want{statusCode: http.StatusNoContent},
		},
		{
			name:         "слишком много запросов",
			serverStatus: http.StatusTooManyRequests,
			want:         want{statusCode: http.StatusTooManyRequests},
		},
		{
			name:         "ошибка сервера",
			serverStatus: http.StatusInternalServerError,
			want:         want{statusCode: http.StatusInternalServerError, err: true},
		},
		{
			name:           "невалидный json",
			serverResponse: `{"transaction":1,"status":}`,
			serverStatus:   http.StatusOK,
			want:           want{statusCode: http.StatusOK, err: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/transactions/tx-1", r.URL.Path)
				w.WriteHeader(tt.serverStatus)
				_, _ = w.Write([]byte(tt.serverResponse))
			}))
			defer srv.Close()

			resp, status, err := NewClient(srv.URL).GetTransaction(context.Background(), "tx-1")
			if tt.want.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want.statusCode, status)
			if tt.want.resp == nil {
				assert.Nil(t, resp)
				return
			}
			assert.Equal(t, tt.want.resp.Transaction, resp.Transaction)
			assert.Equal(t, tt.want.resp.Status, resp.Status)
			if tt.want.resp.Amount != nil {
				if assert.NotNil(t, resp.Amount) {
					assert.True(t, tt.want.resp.Amount.Equal(*resp.Amount))
				}
			} else {
				assert.Nil(t, resp.Amount)
			}
		})
	}
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
