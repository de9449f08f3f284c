package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/errs"
	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type mockAuditor struct {
	mock.Mock
}

func (m *mockAuditor) Record(ctx context.Context, entry AuditEntry) {
	m.Called(ctx, entry)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	args := m.Called(ctx, key, dst)
	if raw, ok := args.Get(0).(string); ok {
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			return false, err
		}
		return true, args.Error(1)
	}
	return false, args.Error(1)
}

func (m *mockCache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	return m.Called(ctx, key, v, ttl).Error(0)
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T: %v", err, err)
	assert.Equal(t, status, httpErr.Status)
}

func int64Ptr(v int64) *int64 { return &v }

func ref(id int64) model.IDRef { return model.IDRef{ID: int64Ptr(id)} }
