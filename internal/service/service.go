// Package service holds the per-module business flow: which data access
// call to make, how an empty result maps to an HTTP error, and the side
// effects (audit rows, cache, background jobs) of a successful call.
package service

import (
	"context"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/errs"
	"github.com/rs/zerolog"
)

// Auditor records successful mutations. It never fails the caller.
type Auditor interface {
	Record(ctx context.Context, entry AuditEntry)
}

// internalError logs cause and hides it behind a generic 500.
func internalError(ctx context.Context, cause error, msg string) error {
	zerolog.Ctx(ctx).Error().Err(cause).Msg(msg)
	return errs.NewInternalServerError()
}

// noRows is the 500 for a stored function that produced nothing.
func noRows(ctx context.Context, function string) error {
	zerolog.Ctx(ctx).Error().Str("function", function).Msg("stored function returned no rows")
	return errs.NewInternalServerError()
}

func notFound(message string) error {
	return errs.NewNotFoundError(message, true, nil)
}

type clock func() time.Time
