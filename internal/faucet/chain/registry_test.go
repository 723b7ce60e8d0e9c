package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet/chain"
)

func TestRegistryResolveAlias(t *testing.T) {
	registry := chain.NewRegistry(
		"avalanche=https://api.avax.network/ext/bc/C/rpc,fuji=https://api.avax-test.network/ext/bc/C/rpc",
		"avalanche=https://snowtrace.io/tx/,fuji=https://testnet.snowtrace.io/tx/",
		"https://snowtrace.io/tx/",
	)

	endpoint := registry.Resolve("avalanche")
	assert.Equal(t, "avalanche", endpoint.Name)
	assert.Equal(t, "https://api.avax.network/ext/bc/C/rpc", endpoint.RPCURL)
	assert.Equal(t, "https://snowtrace.io/tx/", endpoint.ExplorerBaseURL)

	endpoint = registry.Resolve("fuji")
	assert.Equal(t, "https://api.avax-test.network/ext/bc/C/rpc", endpoint.RPCURL)
	assert.Equal(t, "https://testnet.snowtrace.io/tx/", endpoint.ExplorerBaseURL)
}

func TestRegistryResolveCaseInsensitive(t *testing.T) {
	registry := chain.NewRegistry(
		"avalanche=https://api.avax.network/ext/bc/C/rpc",
		"",
		"https://snowtrace.io/tx/",
	)

	assert.Equal(t, "https://api.avax.network/ext/bc/C/rpc", registry.Resolve("Avalanche").RPCURL)
	assert.Equal(t, "https://api.avax.network/ext/bc/C/rpc", registry.Resolve(" AVALANCHE ").RPCURL)
}

func TestRegistryResolveRawURLPassthrough(t *testing.T) {
	registry := chain.NewRegistry(
		"avalanche=https://api.avax.network/ext/bc/C/rpc",
		"",
		"https://snowtrace.io/tx/",
	)

	endpoint := registry.Resolve("http://127.0.0.1:9650/ext/bc/C/rpc")
	assert.Equal(t, "http://127.0.0.1:9650/ext/bc/C/rpc", endpoint.RPCURL)
	assert.Equal(t, "https://snowtrace.io/tx/", endpoint.ExplorerBaseURL)
}

func TestRegistryExplorerFallback(t *testing.T) {
	registry := chain.NewRegistry(
		"avalanche=https://api.avax.network/ext/bc/C/rpc,fuji=https://api.avax-test.network/ext/bc/C/rpc",
		"fuji=https://testnet.snowtrace.io/tx/",
		"https://snowtrace.io/tx/",
	)

	assert.Equal(t, "https://snowtrace.io/tx/", registry.Resolve("avalanche").ExplorerBaseURL)
	assert.Equal(t, "https://testnet.snowtrace.io/tx/", registry.Resolve("fuji").ExplorerBaseURL)
}

func TestRegistryList(t *testing.T) {
	registry := chain.NewRegistry(
		"fuji=https://api.avax-test.network/ext/bc/C/rpc,avalanche=https://api.avax.network/ext/bc/C/rpc",
		"",
		"https://snowtrace.io/tx/",
	)

	endpoints := registry.List()
	require.Len(t, endpoints, 2)
	assert.Equal(t, "avalanche", endpoints[0].Name)
	assert.Equal(t, "fuji", endpoints[1].Name)
}

func TestParsePairs(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected map[string]string
	}{
		{
			name:     "empty",
			raw:      "",
			expected: map[string]string{},
		},
		{
			name:     "single pair",
			raw:      "avalanche=https://api.avax.network/ext/bc/C/rpc",
			expected: map[string]string{"avalanche": "https://api.avax.network/ext/bc/C/rpc"},
		},
		{
			name: "whitespace and casing",
			raw:  " Avalanche = https://api.avax.network/ext/bc/C/rpc , FUJI=https://api.avax-test.network/ext/bc/C/rpc",
			expected: map[string]string{
				"avalanche": "https://api.avax.network/ext/bc/C/rpc",
				"fuji":      "https://api.avax-test.network/ext/bc/C/rpc",
			},
		},
		{
			name:     "value containing equals sign",
			raw:      "local=http://127.0.0.1:8545?key=abc",
			expected: map[string]string{"local": "http://127.0.0.1:8545?key=abc"},
		},
		{
			name:     "skips malformed segments",
			raw:      "avalanche=https://api.avax.network/ext/bc/C/rpc,,broken,=nourl,noval=",
			expected: map[string]string{"avalanche": "https://api.avax.network/ext/bc/C/rpc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, chain.ParsePairs(tt.raw))
		})
	}
}
