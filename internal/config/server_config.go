package config

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/util"
)

// EchoServer configures the HTTP layer.
type EchoServer struct {
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableLoggerMiddleware         bool
	EnablePrometheusMiddleware     bool
}

// LoggerServer configures process-wide logging.
type LoggerServer struct {
	Level              zerolog.Level
	PrettyPrintConsole bool
}

// FaucetServer configures the transfer pipeline.
type FaucetServer struct {
	// PrivateKey is the hex-encoded signing key. Never serialized.
	PrivateKey string `json:"-"`

	// Decimals defines the smallest unit (18 -> wei).
	Decimals int

	// GasLimit for a native transfer.
	GasLimit uint64

	// ConfirmationTimeout bounds the receipt wait per request.
	ConfirmationTimeout time.Duration

	// ReceiptPollInterval between receipt queries.
	ReceiptPollInterval time.Duration

	// Networks maps aliases to RPC URLs ("name=url,name=url").
	Networks string

	// ExplorerURLs maps aliases to explorer bases ("name=url,name=url").
	ExplorerURLs string

	// DefaultExplorerBaseURL is used for networks without an explorer entry.
	DefaultExplorerBaseURL string
}

// Server is the whole, immutable service configuration, loaded once at
// process start and shared read-only across all request handlers.
type Server struct {
	Echo   EchoServer
	Logger LoggerServer
	Faucet FaucetServer
}

var loadDotEnvOnce sync.Once

// DefaultServiceConfigFromEnv returns the service config as parsed from the
// process environment, applying defaults for everything unset. A `.env` file
// in the working directory is loaded first if present.
func DefaultServiceConfigFromEnv() Server {
	loadDotEnvOnce.Do(func() {
		_ = gotenv.Load()
	})

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ECHO_LISTEN_ADDRESS", ":6007")
	v.SetDefault("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true)
	v.SetDefault("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_PROMETHEUS_MIDDLEWARE", true)

	v.SetDefault("SERVER_LOGGER_LEVEL", "info")
	v.SetDefault("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false)

	v.SetDefault("FAUCET_PRIVATE_KEY", "")
	v.SetDefault("FAUCET_DECIMALS", 18)
	v.SetDefault("FAUCET_GAS_LIMIT", 21000)
	v.SetDefault("FAUCET_CONFIRMATION_TIMEOUT", 90*time.Second)
	v.SetDefault("FAUCET_RECEIPT_POLL_INTERVAL", 2*time.Second)
	v.SetDefault("FAUCET_NETWORKS",
		"avalanche=https://api.avax.network/ext/bc/C/rpc,fuji=https://api.avax-test.network/ext/bc/C/rpc")
	v.SetDefault("FAUCET_EXPLORER_URLS",
		"avalanche=https://snowtrace.io/tx/,fuji=https://testnet.snowtrace.io/tx/")
	v.SetDefault("FAUCET_EXPLORER_BASE_URL", "https://snowtrace.io/tx/")

	privateKey := v.GetString("FAUCET_PRIVATE_KEY")
	if privateKey == "" {
		// legacy env name of the first deployment
		privateKey = v.GetString("KEY")
	}

	return Server{
		Echo: EchoServer{
			ListenAddress:                  v.GetString("SERVER_ECHO_LISTEN_ADDRESS"),
			HideInternalServerErrorDetails: v.GetBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS"),
			EnableRecoverMiddleware:        v.GetBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE"),
			EnableRequestIDMiddleware:      v.GetBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE"),
			EnableLoggerMiddleware:         v.GetBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE"),
			EnablePrometheusMiddleware:     v.GetBool("SERVER_ECHO_ENABLE_PROMETHEUS_MIDDLEWARE"),
		},
		Logger: LoggerServer{
			Level:              util.LogLevelFromString(v.GetString("SERVER_LOGGER_LEVEL")),
			PrettyPrintConsole: v.GetBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE"),
		},
		Faucet: FaucetServer{
			PrivateKey:             privateKey,
			Decimals:               v.GetInt("FAUCET_DECIMALS"),
			GasLimit:               v.GetUint64("FAUCET_GAS_LIMIT"),
			ConfirmationTimeout:    v.GetDuration("FAUCET_CONFIRMATION_TIMEOUT"),
			ReceiptPollInterval:    v.GetDuration("FAUCET_RECEIPT_POLL_INTERVAL"),
			Networks:               v.GetString("FAUCET_NETWORKS"),
			ExplorerURLs:           v.GetString("FAUCET_EXPLORER_URLS"),
			DefaultExplorerBaseURL: v.GetString("FAUCET_EXPLORER_BASE_URL"),
		},
	}
}
