package common

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api"
)

func GetRootRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/", getRootHandler(s))
}

func getRootHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, World!")
	}
}
