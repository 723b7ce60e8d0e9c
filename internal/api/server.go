package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/config"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet/chain"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet/signer"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/metrics"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/util"
)

// FaucetService interface for transfer operations
type FaucetService interface {
	ExecuteTransfer(ctx context.Context, req *faucet.TransferRequest) (*faucet.TransferOutcome, error)
}

// SignerManager interface for the process-wide signing identity
// Alias to signer.Manager for API access
type SignerManager = signer.Manager

type Router struct {
	Routes      []*echo.Route
	Root        *echo.Group
	Management  *echo.Group
	APIV1Faucet *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the
// components in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized
// after the InitNewServer call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config   config.Server
	Metrics  *metrics.Service
	Signer   SignerManager
	Networks *chain.Registry
	Faucet   FaucetService
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized
// separately. Components which shouldn't be handled must be labeled `wire:"-"`
// in the Server struct.
func newServerWithComponents(
	cfg config.Server,
	metrics *metrics.Service,
	signerManager SignerManager,
	networks *chain.Registry,
	faucetService FaucetService,
) *Server {
	return &Server{
		Config:   cfg,
		Metrics:  metrics,
		Signer:   signerManager,
		Networks: networks,
		Faucet:   faucetService,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Signer != nil {
		log.Debug().Msg("Clearing signing key material")
		s.Signer.Clear()
	}

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	return errs
}
