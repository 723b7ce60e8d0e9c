package api

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/config"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet/chain"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet/client"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet/signer"
)

// NewSignerManager loads the signing key material into a fresh manager.
// The material itself is parsed lazily per request; only its presence is a
// startup requirement.
//
//nolint:ireturn
func NewSignerManager(cfg config.Server) (SignerManager, error) {
	if cfg.Faucet.PrivateKey == "" {
		return nil, errors.New("faucet private key is not configured (FAUCET_PRIVATE_KEY)")
	}

	manager := signer.NewManager()
	manager.Initialize(cfg.Faucet.PrivateKey)

	return manager, nil
}

// NewNetworkRegistry builds the network registry from configuration.
func NewNetworkRegistry(cfg config.Server) *chain.Registry {
	return chain.NewRegistry(cfg.Faucet.Networks, cfg.Faucet.ExplorerURLs, cfg.Faucet.DefaultExplorerBaseURL)
}

// NewFaucetService wires the transfer orchestrator with a per-request dialer.
//
//nolint:ireturn
func NewFaucetService(cfg config.Server, signerManager SignerManager, networks *chain.Registry) FaucetService {
	dial := func(ctx context.Context, rawurl string) (faucet.NodeClient, error) {
		return client.Dial(ctx, rawurl, cfg.Faucet.ReceiptPollInterval)
	}

	return faucet.NewService(faucet.ServiceConfig{
		Decimals:            cfg.Faucet.Decimals,
		GasLimit:            cfg.Faucet.GasLimit,
		ConfirmationTimeout: cfg.Faucet.ConfirmationTimeout,
	}, signerManager, networks, dial)
}
