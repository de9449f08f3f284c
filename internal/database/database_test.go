package database

import (
	"context"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/deppfellow/loan-backoffice/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

type recordingTracer struct {
	starts int
	ends   int
}

func (r *recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	r.starts++
	return ctx
}

func (r *recordingTracer) TraceQueryEnd(_ context.Context, _ *pgx.Conn, _ pgx.TraceQueryEndData) {
	r.ends++
}

func TestMultiTracer_FansOut(t *testing.T) {
	first, second := &recordingTracer{}, &recordingTracer{}
	mt := &multiTracer{tracers: []any{first, "not a tracer", second}}

	ctx := mt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	mt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Equal(t, 1, first.starts)
	assert.Equal(t, 1, second.ends)
}

func TestBuildTracer(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("none outside local without New Relic", func(t *testing.T) {
		cfg := &config.Config{Primary: config.Primary{Env: "production"}}
		assert.Nil(t, buildTracer(cfg, &logger, nil))
	})

	t.Run("trace log in local", func(t *testing.T) {
		cfg := &config.Config{Primary: config.Primary{Env: "local"}}
		assert.NotNil(t, buildTracer(cfg, &logger, nil))
	})
}

func TestOpen_WrapsExistingConnection(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db, err := Open(mockDB, gormlogger.Discard)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT 1`).WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "001_create_service_audit.sql", entries[0].Name())
}
