package config_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/config"
)

func TestDefaultServiceConfigFromEnv(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()

	assert.Equal(t, ":6007", cfg.Echo.ListenAddress)
	assert.True(t, cfg.Echo.HideInternalServerErrorDetails)
	assert.Equal(t, zerolog.InfoLevel, cfg.Logger.Level)

	assert.Equal(t, 18, cfg.Faucet.Decimals)
	assert.Equal(t, uint64(21000), cfg.Faucet.GasLimit)
	assert.Equal(t, 90*time.Second, cfg.Faucet.ConfirmationTimeout)
	assert.Equal(t, 2*time.Second, cfg.Faucet.ReceiptPollInterval)
	assert.Contains(t, cfg.Faucet.Networks, "avalanche=https://api.avax.network/ext/bc/C/rpc")
	assert.Contains(t, cfg.Faucet.Networks, "fuji=https://api.avax-test.network/ext/bc/C/rpc")
	assert.Equal(t, "https://snowtrace.io/tx/", cfg.Faucet.DefaultExplorerBaseURL)
}

func TestLegacyPrivateKeyEnvFallback(t *testing.T) {
	t.Setenv("FAUCET_PRIVATE_KEY", "")
	t.Setenv("KEY", "deadbeef")

	cfg := config.DefaultServiceConfigFromEnv()
	assert.Equal(t, "deadbeef", cfg.Faucet.PrivateKey)

	t.Setenv("FAUCET_PRIVATE_KEY", "cafe")
	cfg = config.DefaultServiceConfigFromEnv()
	assert.Equal(t, "cafe", cfg.Faucet.PrivateKey)
}

func TestPrintServiceEnv(t *testing.T) {
	t.Setenv("FAUCET_PRIVATE_KEY", "super-secret")

	cfg := config.DefaultServiceConfigFromEnv()

	res, err := json.MarshalIndent(cfg, "", "  ")
	require.NoError(t, err)

	// the signing key must never leak through config serialization
	assert.NotContains(t, string(res), "super-secret")
	assert.Contains(t, string(res), "ListenAddress")
}
