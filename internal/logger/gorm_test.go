package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func traceSQL() (string, int64) {
	return `SELECT * FROM "Deposit" WHERE "ID" = 1`, 1
}

func TestGormLogger_Trace(t *testing.T) {
	t.Run("errors", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewGormLogger(zerolog.New(&buf), gormlogger.Warn)

		l.Trace(context.Background(), time.Now(), traceSQL, errors.New("boom"))

		assert.Contains(t, buf.String(), `"message":"SQL error"`)
		assert.Contains(t, buf.String(), `"component":"gorm"`)
		assert.Contains(t, buf.String(), `"error":"boom"`)
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewGormLogger(zerolog.New(&buf), gormlogger.Info)

		l.Trace(context.Background(), time.Now(), traceSQL, gormlogger.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewGormLogger(zerolog.New(&buf), gormlogger.Warn, WithSlowThreshold(time.Millisecond))

		l.Trace(context.Background(), time.Now().Add(-time.Second), traceSQL, nil)

		assert.Contains(t, buf.String(), `"message":"slow SQL"`)
	})

	t.Run("fast queries stay quiet at warn", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewGormLogger(zerolog.New(&buf), gormlogger.Warn)

		l.Trace(context.Background(), time.Now(), traceSQL, nil)

		assert.Empty(t, buf.String())
	})

	t.Run("silent", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewGormLogger(zerolog.New(&buf), gormlogger.Warn).LogMode(gormlogger.Silent)

		l.Trace(context.Background(), time.Now(), traceSQL, errors.New("boom"))

		assert.Empty(t, buf.String())
	})

	t.Run("prefers the request logger", func(t *testing.T) {
		var base, request bytes.Buffer
		l := NewGormLogger(zerolog.New(&base), gormlogger.Info)

		ctx := zerolog.New(&request).With().Str("request_id", "r-1").Logger().WithContext(context.Background())
		l.Trace(ctx, time.Now(), traceSQL, nil)

		assert.Empty(t, base.String())
		assert.Contains(t, request.String(), `"request_id":"r-1"`)
		assert.Contains(t, request.String(), `"message":"SQL query"`)
	})
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("verbose"))
}
