package router

import (
	"errors"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api/httperrors"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/types"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/util"
)

// HTTPErrorHandler renders all unhandled handler errors in the public error
// shape. Internal causes are logged but only exposed when
// hideInternalServerErrorDetails is disabled.
func HTTPErrorHandler(hideInternalServerErrorDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log := util.LogFromEchoContext(c)

		var (
			code    int
			payload interface{}
		)

		var httpValidationError *httperrors.HTTPValidationError
		var httpError *httperrors.HTTPError
		var echoHTTPError *echo.HTTPError

		switch {
		case errors.As(err, &httpValidationError):
			code = int(*httpValidationError.Code)
			payload = httpValidationError
		case errors.As(err, &httpError):
			code = int(*httpError.Code)
			if httpError.Internal != nil {
				log.Debug().Err(httpError.Internal).Msg("HTTP error with internal cause")
			}
			payload = httpError
		case errors.As(err, &echoHTTPError):
			code = echoHTTPError.Code
			title := http.StatusText(echoHTTPError.Code)
			if msg, ok := echoHTTPError.Message.(string); ok && !hideInternalServerErrorDetails {
				title = msg
			}
			payload = &types.PublicHTTPError{
				Code:  swag.Int64(int64(echoHTTPError.Code)),
				Type:  swag.String(types.PublicHTTPErrorTypeGeneric),
				Title: swag.String(title),
			}
		default:
			code = http.StatusInternalServerError
			title := http.StatusText(http.StatusInternalServerError)
			if !hideInternalServerErrorDetails {
				title = err.Error()
			}
			log.Error().Err(err).Msg("Unhandled error")
			payload = &types.PublicHTTPError{
				Code:  swag.Int64(int64(code)),
				Type:  swag.String(types.PublicHTTPErrorTypeGeneric),
				Title: swag.String(title),
			}
		}

		if writeErr := c.JSON(code, payload); writeErr != nil {
			log.Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
}
