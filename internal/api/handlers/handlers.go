package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api/handlers/common"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api/handlers/faucet"
)

// AttachAllRoutes registers every route of the service on the server router.
func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{
		common.GetRootRoute(s),
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		common.GetMetricsRoute(s),
		faucet.PostTransferRoute(s),
		faucet.PostAvalancheRequestRoute(s),
	}
}
