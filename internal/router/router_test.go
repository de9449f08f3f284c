package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/config"
	"github.com/deppfellow/loan-backoffice/internal/handler"
	"github.com/deppfellow/loan-backoffice/internal/middleware"
	"github.com/deppfellow/loan-backoffice/internal/server"
	"github.com/deppfellow/loan-backoffice/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticResolver struct{}

func (staticResolver) Resolve(ctx context.Context, externalUserID string) (int64, error) {
	return 1, nil
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	logger := zerolog.Nop()
	observability := config.DefaultObservabilityConfig()
	observability.HealthChecks.Timeout = time.Second
	observability.HealthChecks.Checks = nil

	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
			},
			Observability: observability,
		},
		Logger: &logger,
	}

	h := handler.NewHandlers(s, &service.Services{})
	m := middleware.NewMiddlewares(s, staticResolver{})

	return NewRouter(s, h, m)
}

func TestNewRouter_Routes(t *testing.T) {
	r := newTestRouter(t)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /status",
		"HEAD /status",
		"GET /docs",
		"GET /application/:id/conditions",
		"PUT /application/:id/conditions/configure",
		"POST /application/:id/condition",
		"GET /application/:id/conditions/stage/:stage/met",
		"GET /application/:id/conditions/stage/:stage/metflag",
		"POST /application/:id/conditions/process/status/:statusId",
		"GET /condition/:id",
		"PUT /condition/:id",
		"POST /condition/:id/process",
		"GET /loan/:id/deposits",
		"POST /loan/:id/deposit",
		"GET /deposit/:id",
		"PUT /deposit/:id",
		"DELETE /deposit/:id",
		"GET /application/:id/fees",
		"POST /application/:id/fee",
		"GET /fee/:id",
		"PUT /fee/:id",
		"DELETE /fee/:id",
		"GET /application/:id/finalapprovals",
		"GET /application/:id/finalapprovals/latest",
		"GET /finalapproval/:id",
		"PUT /finalapproval/:id",
		"PUT /finalapproval/:id/reset",
		"GET /finalapproval/:id/next",
		"POST /application/:id/autopool",
		"GET /thirdparty/track/:oprid",
		"GET /financial/:id/liability",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestNewRouter_Auth(t *testing.T) {
	r := newTestRouter(t)

	t.Run("status is public", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("business routes need a session", func(t *testing.T) {
		for _, target := range []string{"/deposit/1", "/application/1/conditions", "/no/such/route"} {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

			require.Equal(t, http.StatusUnauthorized, rec.Code, target)
		}
	})
}
