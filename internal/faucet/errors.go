package faucet

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies the pipeline stage a transfer failed in.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetworkError
	KindInvalidPrivateKey
	KindGetBalanceError
	KindInvalidAmountFormat
	KindInvalidReceiverAddress
	KindTransactionError
)

// String returns a stable machine-readable name, used as a metrics label.
func (k Kind) String() string {
	switch k {
	case KindNetworkError:
		return "network_error"
	case KindInvalidPrivateKey:
		return "invalid_private_key"
	case KindGetBalanceError:
		return "get_balance_error"
	case KindInvalidAmountFormat:
		return "invalid_amount_format"
	case KindInvalidReceiverAddress:
		return "invalid_receiver_address"
	case KindTransactionError:
		return "transaction_error"
	default:
		return "unknown"
	}
}

// prefix is the human-readable message prefix for each kind.
func (k Kind) prefix() string {
	switch k {
	case KindNetworkError:
		return "Network connection error"
	case KindInvalidPrivateKey:
		return "Invalid private key"
	case KindGetBalanceError:
		return "Failed to get asset balance"
	case KindInvalidAmountFormat:
		return "Invalid amount format"
	case KindInvalidReceiverAddress:
		return "Invalid receiver address"
	case KindTransactionError:
		return "Transaction failed"
	default:
		return "Transfer failed"
	}
}

// IsClientError reports whether the kind is caused by bad request input
// rather than by infrastructure. The HTTP adapter maps these to 400.
func (k Kind) IsClientError() bool {
	return k == KindInvalidAmountFormat || k == KindInvalidReceiverAddress
}

// Error is a transfer pipeline failure carrying the stage kind and the
// underlying collaborator's diagnostic.
type Error struct {
	kind  Kind
	cause error
}

// NewError wraps cause with the given kind.
func NewError(kind Kind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.kind.prefix()
	}

	return fmt.Sprintf("%s: %s", e.kind.prefix(), e.cause.Error())
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf extracts the Kind from err, or KindUnknown if err does not carry one.
func KindOf(err error) Kind {
	var transferErr *Error
	if stderrors.As(err, &transferErr) {
		return transferErr.Kind()
	}

	return KindUnknown
}
