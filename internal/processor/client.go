package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusConfirmed TransactionStatus = "CONFIRMED"
	StatusFailed    TransactionStatus = "FAILED"
)

type ClientInterface interface {
	GetTransaction(ctx context.Context, transactionID string) (*TransactionResponse, int, error)
}

type TransactionResponse struct {
	Transaction string            `json:"transaction"`
	Status      TransactionStatus `json:"status"`
	Amount      *decimal.Decimal  `json:"amount,omitempty"`
}

type Client struct {
	baseURL string
	client  *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  resty.New().SetTimeout(5 * time.Second),
	}
}

// GetTransaction asks the processor about a deposit transaction. A nil response with no error means
// the processor has nothing to say yet (unknown transaction or rate limited).
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*TransactionResponse, int, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"transactionID": transactionID}).
		Get(c.baseURL + "/api/transactions/{transactionID}")
	if err != nil {
		return nil, 0, err
	}

	logger.Log.Debug("processor response", zap.String("transaction", transactionID), zap.Int("status", resp.StatusCode()))

	if resp.StatusCode() == http.StatusNoContent || resp.StatusCode() == http.StatusTooManyRequests {
		return nil, resp.StatusCode(), nil
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, resp.StatusCode(), fmt.Errorf("unexpected status: %d", resp.StatusCode())
	}

	var result TransactionResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, resp.StatusCode(), err
	}

	return &result, resp.StatusCode(), nil
}
