package util_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/util"
)

func TestLogLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{input: "debug", expected: zerolog.DebugLevel},
		{input: "info", expected: zerolog.InfoLevel},
		{input: "warn", expected: zerolog.WarnLevel},
		{input: "error", expected: zerolog.ErrorLevel},
		{input: "WARN", expected: zerolog.WarnLevel},
		{input: "nonsense", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, util.LogLevelFromString(tt.input))
		})
	}
}
