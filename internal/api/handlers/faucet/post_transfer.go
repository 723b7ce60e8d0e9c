package faucet

import (
	"net/http"
	"time"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/faucet"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/metrics"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/types"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/util"
)

func PostTransferRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Faucet.POST("/transfer", postTransferHandler(s))
}

// PostAvalancheRequestRoute keeps the route of the first deployment alive for
// clients that never migrated.
func PostAvalancheRequestRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/avalanche/request", postTransferHandler(s))
}

func postTransferHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostTransferPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		req := &faucet.TransferRequest{
			ReceiverAddress: swag.StringValue(body.Address),
			Network:         swag.StringValue(body.Network),
			Amount:          swag.StringValue(body.Amount),
		}

		start := time.Now()

		outcome, err := s.Faucet.ExecuteTransfer(ctx, req)
		if err != nil {
			kind := faucet.KindOf(err)
			s.Metrics.ObserveTransfer(req.Network, kind.String(), time.Since(start))

			log.Error().
				Err(err).
				Str("kind", kind.String()).
				Str("network", req.Network).
				Msg("Transfer failed")

			// bad request input is the caller's fault, everything else is ours
			status := http.StatusInternalServerError
			if kind.IsClientError() {
				status = http.StatusBadRequest
			}

			return c.JSON(status, &types.TransferErrorResponse{
				Success: swag.Bool(false),
				Message: swag.String(err.Error()),
			})
		}

		s.Metrics.ObserveTransfer(req.Network, metrics.OutcomeSuccess, time.Since(start))

		log.Info().
			Str("tx_id", outcome.TxID).
			Str("network", req.Network).
			Msg("Transfer confirmed")

		response := &types.TransferResponse{
			Success:     swag.Bool(true),
			TxID:        swag.String(outcome.TxID),
			ExplorerURL: swag.String(outcome.ExplorerURL),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
