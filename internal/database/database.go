// Package database opens the PostgreSQL connection pool shared by the
// service and the GORM handle built on top of it.
//
// It handles:
//   - creating a pgx connection pool (pgxpool) from config
//   - wiring query tracing (New Relic nrpgx5, pgx tracelog in local env)
//   - exposing the pool to GORM through database/sql so ORM queries and
//     stored function calls share the same connections and tracers
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/config"
	loggerConfig "github.com/deppfellow/loan-backoffice/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database holds the pool and the GORM handle that wraps it.
type Database struct {
	Pool *pgxpool.Pool
	DB   *gorm.DB
	sql  *sql.DB
	log  *zerolog.Logger
}

// multiTracer fans pgx trace callbacks out to several tracers, since
// pgx only has a single Tracer slot.
type multiTracer struct {
	tracers []any
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// DatabasePingTimeout is the startup ping deadline in seconds.
const DatabasePingTimeout = 10

// buildTracer picks the pgx tracer for the environment. It may return nil.
func buildTracer(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) pgx.QueryTracer {
	var tracers []any

	if loggerService != nil && loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	// SQL logging is noisy, local only.
	if cfg.Primary.Env == "local" {
		level := logger.GetLevel()
		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(loggerConfig.NewPgxLogger(level)),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(level),
		})
	}

	switch len(tracers) {
	case 0:
		return nil
	case 1:
		return tracers[0].(pgx.QueryTracer)
	default:
		return &multiTracer{tracers: tracers}
	}
}

// New creates the instrumented pool, pings it and opens GORM on top of it.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	pgxPoolConfig.MinConns = int32(min(cfg.Database.MaxIdleConns, cfg.Database.MaxOpenConns))
	pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second
	pgxPoolConfig.ConnConfig.Tracer = buildTracer(cfg, logger, loggerService)

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormLogger := loggerConfig.NewGormLogger(
		*logger,
		loggerConfig.MapGormLogLevel(cfg.Observability.GetLogLevel()),
		loggerConfig.WithSlowThreshold(cfg.Observability.Logging.SlowQueryThreshold),
	)

	db, err := Open(sqlDB, gormLogger)
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, err
	}

	logger.Info().Msg("connected to the database")

	return &Database{
		Pool: pool,
		DB:   db,
		sql:  sqlDB,
		log:  logger,
	}, nil
}

// Open wraps an existing *sql.DB in GORM. Tests use it with go-sqlmock.
//
// The V8 schema names its tables and columns in PascalCase, so every model
// declares TableName and column tags explicitly.
func Open(conn *sql.DB, gormLogger gormlogger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       conn,
		DriverName: "pgx",
	}), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	return db, nil
}

// Close releases the GORM sql.DB wrapper and then the pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	if db.sql != nil {
		if err := db.sql.Close(); err != nil {
			db.log.Warn().Err(err).Msg("closing sql.DB wrapper")
		}
	}
	db.Pool.Close()
	return nil
}
