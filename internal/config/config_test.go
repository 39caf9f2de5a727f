package config

import (
	"flag"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.PaymentPollInterval)
	assert.Equal(t, 3*time.Second, cfg.CreditPollInterval)
	assert.True(t, cfg.ActivationThreshold.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "/dashboard", cfg.DashboardRoute)
	assert.Equal(t, "/auth", cfg.AuthRoute)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "0.0.0.0:9000")
	t.Setenv("TELEGRAM_CHAT_IDS", "100,200")
	t.Setenv("ACTIVATION_THRESHOLD", "300.50")
	t.Setenv("CREDIT_POLL_INTERVAL", "500ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.RunAddress)
	assert.Equal(t, []string{"100", "200"}, cfg.TelegramChatIDs)
	assert.True(t, cfg.ActivationThreshold.Equal(decimal.RequireFromString("300.50")))
	assert.Equal(t, 500*time.Millisecond, cfg.CreditPollInterval)
}

func TestConfig_parseFlags(t *testing.T) {
	cfg := &Config{RunAddress: "localhost:8084", DatabaseURI: "env-dsn"}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	cfg.parseFlags(fs, []string{"-a", ":8080", "-k", "secret", "-p", "http://processor"})

	assert.Equal(t, ":8080", cfg.RunAddress)
	assert.Equal(t, "env-dsn", cfg.DatabaseURI)
	assert.Equal(t, "secret", cfg.SecretKey)
	assert.Equal(t, "http://processor", cfg.ProcessorAddress)
}
