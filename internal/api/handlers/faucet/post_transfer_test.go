package faucet_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/test"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/types"
)

type stubFaucetService struct {
	outcome *faucet.TransferOutcome
	err     error
	lastReq *faucet.TransferRequest
}

func (s *stubFaucetService) ExecuteTransfer(_ context.Context, req *faucet.TransferRequest) (*faucet.TransferOutcome, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.outcome, nil
}

func validPayload() *types.PostTransferPayload {
	return &types.PostTransferPayload{
		Address: swag.String("0x71C7656EC7ab88b098defB751B7401B5f6d8976F"),
		Network: swag.String("avalanche"),
		Amount:  swag.String("1.5"),
	}
}

func TestPostTransferSuccess(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		stub := &stubFaucetService{
			outcome: &faucet.TransferOutcome{
				TxID:        "0xdeadbeef",
				ExplorerURL: "https://snowtrace.io/tx/0xdeadbeef",
			},
		}
		s.Faucet = stub

		res := test.PerformRequest(t, s, "POST", "/api/v1/faucet/transfer", validPayload(), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.TransferResponse
		test.ParseResponseBody(t, res, &response)

		assert.True(t, swag.BoolValue(response.Success))
		assert.Equal(t, "0xdeadbeef", swag.StringValue(response.TxID))
		assert.Equal(t, "https://snowtrace.io/tx/0xdeadbeef", swag.StringValue(response.ExplorerURL))

		require.NotNil(t, stub.lastReq)
		assert.Equal(t, "0x71C7656EC7ab88b098defB751B7401B5f6d8976F", stub.lastReq.ReceiverAddress)
		assert.Equal(t, "avalanche", stub.lastReq.Network)
		assert.Equal(t, "1.5", stub.lastReq.Amount)
	})
}

func TestPostTransferLegacyRoute(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		s.Faucet = &stubFaucetService{
			outcome: &faucet.TransferOutcome{
				TxID:        "0xdeadbeef",
				ExplorerURL: "https://snowtrace.io/tx/0xdeadbeef",
			},
		}

		res := test.PerformRequest(t, s, "POST", "/avalanche/request", validPayload(), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.TransferResponse
		test.ParseResponseBody(t, res, &response)
		assert.Equal(t, "0xdeadbeef", swag.StringValue(response.TxID))
	})
}

func TestPostTransferClientErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "invalid amount",
			err:  faucet.NewError(faucet.KindInvalidAmountFormat, errors.New("cannot parse")),
		},
		{
			name: "invalid receiver",
			err:  faucet.NewError(faucet.KindInvalidReceiverAddress, errors.New("not a hex address")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.WithTestServer(t, func(s *api.Server) {
				s.Faucet = &stubFaucetService{err: tt.err}

				res := test.PerformRequest(t, s, "POST", "/api/v1/faucet/transfer", validPayload(), nil)
				require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

				var response types.TransferErrorResponse
				test.ParseResponseBody(t, res, &response)
				assert.False(t, swag.BoolValue(response.Success))
				assert.Equal(t, tt.err.Error(), swag.StringValue(response.Message))
			})
		})
	}
}

func TestPostTransferInfrastructureErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "network error",
			err:  faucet.NewError(faucet.KindNetworkError, errors.New("dial tcp: connection refused")),
		},
		{
			name: "invalid private key",
			err:  faucet.NewError(faucet.KindInvalidPrivateKey, errors.New("invalid hex")),
		},
		{
			name: "balance error",
			err:  faucet.NewError(faucet.KindGetBalanceError, errors.New("rpc failure")),
		},
		{
			name: "transaction error",
			err:  faucet.NewError(faucet.KindTransactionError, errors.New("nonce too low")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.WithTestServer(t, func(s *api.Server) {
				s.Faucet = &stubFaucetService{err: tt.err}

				res := test.PerformRequest(t, s, "POST", "/api/v1/faucet/transfer", validPayload(), nil)
				require.Equal(t, http.StatusInternalServerError, res.Result().StatusCode)

				var response types.TransferErrorResponse
				test.ParseResponseBody(t, res, &response)
				assert.False(t, swag.BoolValue(response.Success))
				assert.Equal(t, tt.err.Error(), swag.StringValue(response.Message))
			})
		})
	}
}

func TestPostTransferMissingFields(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		stub := &stubFaucetService{}
		s.Faucet = stub

		payload := &types.PostTransferPayload{
			Address: swag.String("0x71C7656EC7ab88b098defB751B7401B5f6d8976F"),
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/faucet/transfer", payload, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		// validation failures short-circuit before the pipeline runs
		assert.Nil(t, stub.lastReq)
	})
}
