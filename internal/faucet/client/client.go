package client

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Client wraps an ethclient connection to a single RPC endpoint. One client
// is dialed per transfer request and closed when the request finishes.
type Client struct {
	eth          *ethclient.Client
	chainID      *big.Int
	pollInterval time.Duration
}

// Dial connects to the given RPC endpoint and verifies reachability with a
// chain id probe, so unreachable endpoints fail at dial time instead of at
// the first query.
func Dial(ctx context.Context, rawurl string, pollInterval time.Duration) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rpc endpoint")
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, errors.Wrap(err, "rpc endpoint is not reachable")
	}

	return &Client{
		eth:          eth,
		chainID:      chainID,
		pollInterval: pollInterval,
	}, nil
}

// ChainID returns the chain id fetched from the node during Dial.
func (c *Client) ChainID(_ context.Context) (*big.Int, error) {
	return c.chainID, nil
}

// BalanceAt returns the balance of an address at the latest known block.
func (c *Client) BalanceAt(ctx context.Context, address common.Address) (*big.Int, error) {
	balance, err := c.eth.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}

	return balance, nil
}

// PendingNonceAt returns the pending nonce for the given address.
func (c *Client) PendingNonceAt(ctx context.Context, address common.Address) (uint64, error) {
	nonce, err := c.eth.PendingNonceAt(ctx, address)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get pending nonce")
	}

	return nonce, nil
}

// SuggestGasTipCap suggests a gas tip cap (EIP-1559).
func (c *Client) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	tipCap, err := c.eth.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas tip cap")
	}

	return tipCap, nil
}

// LatestHeader returns the head block header.
func (c *Client) LatestHeader(ctx context.Context) (*types.Header, error) {
	head, err := c.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get latest header")
	}

	return head, nil
}

// SendTransaction broadcasts a signed transaction.
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.eth.SendTransaction(ctx, tx); err != nil {
		return errors.Wrap(err, "failed to send transaction")
	}

	return nil
}

// WaitForReceipt polls for the transaction receipt until the transaction is
// mined or the context deadline expires.
func (c *Client) WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.eth.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}

		if !errors.Is(err, ethereum.NotFound) {
			// transient RPC failures are retried until the deadline
			log.Warn().
				Str("tx_hash", txHash.Hex()).
				Err(err).
				Msg("Receipt query failed, retrying")
		}

		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "gave up waiting for receipt of %s", txHash.Hex())
		case <-ticker.C:
		}
	}
}

// Close closes the underlying connection.
func (c *Client) Close() {
	c.eth.Close()
}
