package command

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api/router"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/config"
)

const shutdownTimeout = 10 * time.Second

// NewSubcommandGroup returns a parent command that only dispatches to its
// subcommands.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use: use,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// WithServer initializes a fully wired server for the duration of closure,
// shutting it down afterwards. Used by maintenance subcommands that need the
// service components without serving HTTP.
func WithServer(ctx context.Context, cfg config.Server, closure func(ctx context.Context, s *api.Server) error) error {
	zerolog.SetGlobalLevel(cfg.Logger.Level)
	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter())
	}

	s, err := api.InitNewServer(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	router.Init(s)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			for _, err := range errs {
				log.Error().Err(err).Msg("Error while shutting down server")
			}
		}
	}()

	return closure(ctx, s)
}
