package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api/router"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/config"
)

// TestFaucetPrivateKey is a throwaway development key (hardhat account #0),
// never funded on any real network.
const TestFaucetPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// TestFaucetAddress is the account derived from TestFaucetPrivateKey.
const TestFaucetAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

const shutdownTimeout = 5 * time.Second

// WithTestServer runs closure against a fully wired server that never binds
// a port; requests go through PerformRequest directly.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Echo.EnableLoggerMiddleware = false
	cfg.Faucet.PrivateKey = TestFaucetPrivateKey

	s, err := api.InitNewServer(cfg)
	require.NoError(t, err)

	router.Init(s)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = s.Shutdown(ctx)
	})

	closure(s)
}

// PerformRequest serves a single request through the server's echo instance.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body interface{}, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

// ParseResponseBody unmarshals the recorded response body into v.
func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	require.NoError(t, json.Unmarshal(res.Body.Bytes(), v))
}
