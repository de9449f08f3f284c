package middleware

import (
	"github.com/deppfellow/loan-backoffice/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares is built once at startup and handed to the router.
type Middlewares struct {
	Global          *GlobalMiddlewares
	Auth            *AuthMiddleware
	PartyRole       *PartyRoleMiddleware
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
	RateLimit       *RateLimitMiddleware
}

// NewMiddlewares wires every middleware. Without a New Relic application
// the tracing middleware degrades into a pass through.
func NewMiddlewares(s *server.Server, resolver PartyRoleResolver) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		PartyRole:       NewPartyRoleMiddleware(resolver),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
