package common

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api"
)

const httpStatusNotReady = 521

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(httpStatusNotReady, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
