package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const DefaultAPIURL = "https://api.telegram.org"

type Sender interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

// Client talks to the Bot API sendMessage method.
type Client struct {
	apiURL string
	token  string
	client *resty.Client
}

func NewClient(apiURL, token string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{ChatID: chatID, Text: text, ParseMode: "HTML", DisableWebPagePreview: true}).
		SetPathParams(map[string]string{"token": c.token}).
		Post(c.apiURL + "/bot{token}/sendMessage")
	if err != nil {
		return fmt.Errorf("send to chat %s: %w", chatID, err)
	}

	body := resp.Body()
	if !gjson.GetBytes(body, "ok").Bool() {
		description := gjson.GetBytes(body, "description").String()
		if description == "" {
			description = resp.Status()
		}
		return fmt.Errorf("send to chat %s: telegram api: %s", chatID, description)
	}
	return nil
}
