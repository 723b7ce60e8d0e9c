package faucet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet/chain"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet/signer"
)

const eip1559FeeMultiplier = 2

type service struct {
	config   ServiceConfig
	signer   signer.Manager
	networks *chain.Registry
	dial     DialFunc
}

// NewService creates the transfer orchestrator.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(config ServiceConfig, signerManager signer.Manager, networks *chain.Registry, dial DialFunc) Service {
	return &service{
		config:   config,
		signer:   signerManager,
		networks: networks,
		dial:     dial,
	}
}

// ExecuteTransfer runs the strictly linear transfer pipeline. Each stage is a
// terminal exit point with its own error kind; no stage is retried.
func (s *service) ExecuteTransfer(ctx context.Context, req *TransferRequest) (*TransferOutcome, error) {
	// 1. Resolve signer from the process-wide key material
	identity, err := s.signer.Resolve()
	if err != nil {
		return nil, NewError(KindInvalidPrivateKey, err)
	}

	// 2. Resolve network and dial a fresh RPC client
	endpoint := s.networks.Resolve(req.Network)

	node, err := s.dial(ctx, endpoint.RPCURL)
	if err != nil {
		return nil, NewError(KindNetworkError, err)
	}
	defer node.Close()

	// 3. Pre-flight balance query. The result does not gate the transfer
	// (the node rejects underfunded transactions at submission); this is a
	// liveness probe against the resolved endpoint.
	balance, err := node.BalanceAt(ctx, identity.Address)
	if err != nil {
		return nil, NewError(KindGetBalanceError, err)
	}

	log.Debug().
		Str("network", endpoint.Name).
		Str("signer", identity.Address.Hex()).
		Str("balance_wei", balance.String()).
		Msg("Faucet balance fetched")

	// 4. Normalize amount into the chain's smallest unit
	value, err := NormalizeAmount(req.Amount, s.config.Decimals)
	if err != nil {
		return nil, err
	}

	// 5. Validate receiver
	if !common.IsHexAddress(req.ReceiverAddress) {
		return nil, NewError(KindInvalidReceiverAddress, errors.Errorf("%q is not a valid hex address", req.ReceiverAddress))
	}
	receiver := common.HexToAddress(req.ReceiverAddress)

	// 6. Construct, sign and submit
	signedTx, err := s.submitTransfer(ctx, node, identity, receiver, value)
	if err != nil {
		return nil, NewError(KindTransactionError, err)
	}

	txHash := signedTx.Hash()

	log.Info().
		Str("network", endpoint.Name).
		Str("tx_hash", txHash.Hex()).
		Str("receiver", receiver.Hex()).
		Str("value_wei", value.String()).
		Msg("Transfer submitted, awaiting confirmation")

	// 7. Await confirmation, bounded by the configured timeout
	waitCtx, cancel := context.WithTimeout(ctx, s.config.ConfirmationTimeout)
	defer cancel()

	receipt, err := node.WaitForReceipt(waitCtx, txHash)
	if err != nil {
		return nil, NewError(KindTransactionError, err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, NewError(KindTransactionError, errors.Errorf("transaction %s reverted", txHash.Hex()))
	}

	// 8. Outcome
	return &TransferOutcome{
		TxID:        txHash.Hex(),
		ExplorerURL: endpoint.ExplorerBaseURL + txHash.Hex(),
	}, nil
}

// submitTransfer builds and broadcasts an EIP-1559 native transfer. The chain
// id always comes from the connected node, never from configuration.
func (s *service) submitTransfer(
	ctx context.Context,
	node NodeClient,
	identity *signer.Identity,
	receiver common.Address,
	value *big.Int,
) (*types.Transaction, error) {
	chainID, err := node.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain id")
	}

	nonce, err := node.PendingNonceAt(ctx, identity.Address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pending nonce")
	}

	tipCap, err := node.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas tip cap")
	}

	head, err := node.LatestHeader(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get latest header")
	}

	if head.BaseFee == nil {
		return nil, errors.New("chain does not support EIP-1559 (baseFee is nil)")
	}

	// MaxFee = BaseFee * 2 + TipCap
	maxFee := new(big.Int).Add(new(big.Int).Mul(head.BaseFee, big.NewInt(eip1559FeeMultiplier)), tipCap)

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: maxFee,
		Gas:       s.config.GasLimit,
		To:        &receiver,
		Value:     value,
	})

	signedTx, err := types.SignTx(tx, types.NewLondonSigner(chainID), identity.PrivateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}

	if err := node.SendTransaction(ctx, signedTx); err != nil {
		return nil, errors.Wrap(err, "failed to send transaction")
	}

	return signedTx, nil
}
