package faucet

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TransferRequest is the externally supplied input of a single transfer.
type TransferRequest struct {
	ReceiverAddress string
	Network         string
	Amount          string
}

// TransferOutcome is the result of a confirmed transfer.
type TransferOutcome struct {
	TxID        string
	ExplorerURL string
}

// ServiceConfig holds the process-wide transfer parameters.
type ServiceConfig struct {
	Decimals            int
	GasLimit            uint64
	ConfirmationTimeout time.Duration
}

// Service executes native-asset transfers end to end.
type Service interface {
	// ExecuteTransfer runs the transfer pipeline for a single request.
	// Every returned error carries a Kind identifying the failed stage.
	ExecuteTransfer(ctx context.Context, req *TransferRequest) (*TransferOutcome, error)
}

// NodeClient is the RPC contract the orchestrator consumes. A fresh client
// is dialed per request; implementations own transport details and receipt
// polling.
type NodeClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, address common.Address) (*big.Int, error)
	PendingNonceAt(ctx context.Context, address common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	LatestHeader(ctx context.Context) (*types.Header, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	Close()
}

// DialFunc connects a NodeClient to the given RPC endpoint.
type DialFunc func(ctx context.Context, rawurl string) (NodeClient, error)
