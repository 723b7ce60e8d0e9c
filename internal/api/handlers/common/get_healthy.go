package common

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// getHealthyHandler is the liveness probe: it only proves the process is
// serving HTTP, never that downstream nodes are reachable.
func getHealthyHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "OK.")
	}
}
