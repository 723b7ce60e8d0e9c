package common

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api"
)

func GetMetricsRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: s.Metrics.Registry(),
	}))
}
