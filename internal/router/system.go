package router

import (
	"github.com/deppfellow/loan-backoffice/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the unauthenticated operational routes.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.HEAD("/status", h.Health.CheckHealth)

	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
