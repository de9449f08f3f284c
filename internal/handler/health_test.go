package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealth(checks []string, rdb *redis.Client) *echoHarness {
	e, s := newTestEcho()

	observability := config.DefaultObservabilityConfig()
	observability.HealthChecks.Timeout = time.Second
	observability.HealthChecks.Checks = checks

	s.Config = &config.Config{
		Primary:       config.Primary{Env: "test"},
		Observability: observability,
	}
	s.Redis = rdb

	h := NewHealthHandler(s)
	e.GET("/status", h.CheckHealth)
	e.HEAD("/status", h.CheckHealth)

	return &echoHarness{e}
}

func TestHealthHandler_CheckHealth(t *testing.T) {
	t.Run("healthy without configured checks", func(t *testing.T) {
		rec := setupHealth(nil, nil).do(http.MethodGet, "/status", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "test", body["environment"])
		assert.Empty(t, body["checks"])
	})

	t.Run("unreachable redis", func(t *testing.T) {
		rdb := redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 200 * time.Millisecond,
			MaxRetries:  -1,
		})
		t.Cleanup(func() { _ = rdb.Close() })

		rec := setupHealth([]string{"redis"}, rdb).do(http.MethodGet, "/status", "")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body struct {
			Status string                       `json:"status"`
			Checks map[string]map[string]string `json:"checks"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unhealthy", body.Status)
		assert.Equal(t, "unhealthy", body.Checks["redis"]["status"])
		assert.NotEmpty(t, body.Checks["redis"]["error"])
	})

	t.Run("skips checks that are not configured", func(t *testing.T) {
		rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
		t.Cleanup(func() { _ = rdb.Close() })

		rec := setupHealth([]string{"database"}, rdb).do(http.MethodHead, "/status", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
