package faucet

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// NormalizeAmount converts a human-readable decimal amount into the chain's
// smallest unit (wei for decimals=18) as an exact integer. The conversion is
// done in rational arithmetic so inputs within the configured precision map
// to their exact integer value.
//
// Fractional digits beyond the configured precision are truncated toward
// zero, matching the integer conversion used on the withdrawal path before
// this service existed. Rejecting instead would break callers that paste
// full-precision balances, and rounding up could overspend the faucet.
func NormalizeAmount(amount string, decimals int) (*big.Int, error) {
	if decimals < 0 {
		return nil, NewError(KindInvalidAmountFormat, errors.Errorf("invalid decimal precision %d", decimals))
	}

	// Rat.SetString also understands "a/b" fraction syntax, which is not a
	// valid decimal amount.
	if strings.Contains(amount, "/") {
		return nil, NewError(KindInvalidAmountFormat, errors.Errorf("failed to parse amount %q", amount))
	}

	value, ok := new(big.Rat).SetString(amount)
	if !ok {
		return nil, NewError(KindInvalidAmountFormat, errors.Errorf("failed to parse amount %q", amount))
	}

	if value.Sign() < 0 {
		return nil, NewError(KindInvalidAmountFormat, errors.Errorf("amount %q is negative", amount))
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	scaled := new(big.Rat).Mul(value, new(big.Rat).SetInt(scale))

	// Int.Quo truncates toward zero, dropping any sub-unit remainder.
	return new(big.Int).Quo(scaled.Num(), scaled.Denom()), nil
}
