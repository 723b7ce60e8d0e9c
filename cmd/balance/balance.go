package balance

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/config"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet/client"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/util/command"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Prints the faucet balance per configured network",
		Long:  `Resolves the signing identity and queries its native-asset balance on every configured network.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := runBalance(cmd.Context()); err != nil {
				log.Fatal().Err(err).Msg("Failed to query faucet balances")
			}
		},
	}
}

func runBalance(ctx context.Context) error {
	return command.WithServer(ctx, config.DefaultServiceConfigFromEnv(), func(ctx context.Context, s *api.Server) error {
		identity, err := s.Signer.Resolve()
		if err != nil {
			return err
		}

		for _, endpoint := range s.Networks.List() {
			node, err := client.Dial(ctx, endpoint.RPCURL, s.Config.Faucet.ReceiptPollInterval)
			if err != nil {
				log.Error().Err(err).Str("network", endpoint.Name).Msg("Failed to connect")
				continue
			}

			balance, err := node.BalanceAt(ctx, identity.Address)
			node.Close()

			if err != nil {
				log.Error().Err(err).Str("network", endpoint.Name).Msg("Failed to get balance")
				continue
			}

			log.Info().
				Str("network", endpoint.Name).
				Str("address", identity.Address.Hex()).
				Str("balance_wei", balance.String()).
				Msg("Faucet balance")
		}

		return nil
	})
}
