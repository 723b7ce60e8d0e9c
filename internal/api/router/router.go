package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api/handlers"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api/middleware"
)

// Init wires the echo instance, the middleware stack and all routes into s.
func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = false
	s.Echo.HideBanner = true
	s.Echo.HTTPErrorHandler = HTTPErrorHandler(s.Config.Echo.HideInternalServerErrorDetails)

	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echomiddleware.Recover())
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
			Generator: uuid.NewString,
		}))
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.Logger())
	}

	if s.Config.Echo.EnablePrometheusMiddleware {
		s.Echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "faucet_http",
			Registerer: s.Metrics.Registry(),
		}))
	}

	s.Router = &api.Router{
		Root:        s.Echo.Group(""),
		Management:  s.Echo.Group("/-"),
		APIV1Faucet: s.Echo.Group("/api/v1/faucet"),
	}

	handlers.AttachAllRoutes(s)
}
