package faucet_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals int
		expected string
	}{
		{name: "zero", amount: "0", decimals: 18, expected: "0"},
		{name: "integer", amount: "2", decimals: 18, expected: "2000000000000000000"},
		{name: "fractional", amount: "1.5", decimals: 18, expected: "1500000000000000000"},
		{name: "small fraction", amount: "0.000000000000000001", decimals: 18, expected: "1"},
		{name: "exact precision", amount: "1.123456789012345678", decimals: 18, expected: "1123456789012345678"},
		{name: "zero decimals", amount: "42", decimals: 0, expected: "42"},
		{name: "six decimals", amount: "1.5", decimals: 6, expected: "1500000"},
		{name: "large amount", amount: "1000000", decimals: 18, expected: "1000000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := faucet.NormalizeAmount(tt.amount, tt.decimals)
			require.NoError(t, err)

			expected, ok := new(big.Int).SetString(tt.expected, 10)
			require.True(t, ok)
			assert.Equal(t, 0, normalized.Cmp(expected), "got %s, want %s", normalized, expected)
		})
	}
}

func TestNormalizeAmountExactAtFullPrecision(t *testing.T) {
	// full 18-digit fractions must map to their exact wei value; a binary
	// float intermediate would land one ulp short on inputs like these
	tests := []struct {
		amount   string
		expected string
	}{
		{amount: "1.123456789012345678", expected: "1123456789012345678"},
		{amount: "0.123456789012345678", expected: "123456789012345678"},
		{amount: "123456.123456789012345678", expected: "123456123456789012345678"},
		{amount: "0.999999999999999999", expected: "999999999999999999"},
		{amount: "9999999.999999999999999999", expected: "9999999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			normalized, err := faucet.NormalizeAmount(tt.amount, 18)
			require.NoError(t, err)

			expected, ok := new(big.Int).SetString(tt.expected, 10)
			require.True(t, ok)
			assert.Equal(t, 0, normalized.Cmp(expected), "got %s, want %s", normalized, expected)
		})
	}
}

func TestNormalizeAmountTruncatesExcessPrecision(t *testing.T) {
	// 19 fractional digits against 18 decimals: the 19th digit is dropped
	normalized, err := faucet.NormalizeAmount("1.1234567890123456789", 18)
	require.NoError(t, err)

	expected, ok := new(big.Int).SetString("1123456789012345678", 10)
	require.True(t, ok)
	assert.Equal(t, 0, normalized.Cmp(expected))
}

func TestNormalizeAmountRejects(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{name: "negative", amount: "-1"},
		{name: "non numeric", amount: "abc"},
		{name: "empty", amount: ""},
		{name: "trailing garbage", amount: "1.5eth"},
		{name: "infinity", amount: "Inf"},
		{name: "fraction syntax", amount: "1/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := faucet.NormalizeAmount(tt.amount, 18)
			require.Error(t, err)
			assert.Equal(t, faucet.KindInvalidAmountFormat, faucet.KindOf(err))
		})
	}
}

func TestNormalizeAmountIsDeterministic(t *testing.T) {
	first, err := faucet.NormalizeAmount("123.456789", 18)
	require.NoError(t, err)

	second, err := faucet.NormalizeAmount("123.456789", 18)
	require.NoError(t, err)

	assert.Equal(t, 0, first.Cmp(second))
}
