// Package router builds the echo instance: global middleware, system
// routes and the authenticated business routes.
package router

import (
	"github.com/deppfellow/loan-backoffice/internal/handler"
	"github.com/deppfellow/loan-backoffice/internal/middleware"
	"github.com/deppfellow/loan-backoffice/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	router.Debug = s.Config.Primary.Env == "local"

	router.Use(
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.CORS(),
		m.Global.Secure(),
		m.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)

	// Group middleware also guards unmatched paths, so unknown routes answer
	// 401 to anonymous callers.
	api := router.Group("", m.Auth.RequireAuth, m.PartyRole.RequirePartyRole)
	registerConditionRoutes(api, h)
	registerDepositRoutes(api, h)
	registerFeeRoutes(api, h)
	registerFinalApprovalRoutes(api, h)
	registerApplicationRoutes(api, h)

	return router
}
