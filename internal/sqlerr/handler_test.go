package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/loan-backoffice/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("Deposit does not exist", true, nil)

	assert.Same(t, original, HandleError(original))
}

func TestHandleError_NotFound(t *testing.T) {
	for _, err := range []error{
		gorm.ErrRecordNotFound,
		fmt.Errorf("retrieve: %w", pgx.ErrNoRows),
		sql.ErrNoRows,
	} {
		httpErr := asHTTPError(t, HandleError(err))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	}
}

func TestHandleError_PgErrors(t *testing.T) {
	t.Run("foreign key violation", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23503", TableName: "Deposit", ColumnName: "DepositTypeID"}

		httpErr := asHTTPError(t, HandleError(err))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "DEPOSIT_NOT_FOUND", httpErr.Code)
		assert.Equal(t, "The referenced Deposit Type does not exist", httpErr.Message)
	})

	t.Run("unique violation names the column", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", TableName: "service_audit", ConstraintName: "service_audit_entity_key"}

		httpErr := asHTTPError(t, HandleError(err))
		assert.Equal(t, "SERVICE_AUDIT_ALREADY_EXISTS", httpErr.Code)
		assert.Equal(t, "A Service Audit with this Entity already exists", httpErr.Message)
		assert.True(t, httpErr.Override)
	})

	t.Run("not null violation reports the field", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23502", TableName: "Deposit", ColumnName: "Amount"}

		httpErr := asHTTPError(t, HandleError(err))
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "amount", httpErr.Errors[0].Field)
		assert.Equal(t, "The Amount is required", httpErr.Message)
	})

	t.Run("raised exception is opaque", func(t *testing.T) {
		err := &pgconn.PgError{Code: "P0001", Message: "condition type inactive"}

		httpErr := asHTTPError(t, HandleError(err))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.NotContains(t, httpErr.Message, "condition type")
	})
}

func TestHandleError_Unknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23514", Severity: "ERROR"})

	assert.Equal(t, CheckViolation, ErrCode(fmt.Errorf("wrapped: %w", converted)))
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestHumanizeText(t *testing.T) {
	assert.Equal(t, "First Name", humanizeText("first_name"))
	assert.Equal(t, "Loan ID", humanizeText("LoanID"))
	assert.Equal(t, "Application Container Fee", humanizeText("ApplicationContainerFee"))
	assert.Equal(t, "", humanizeText(""))
}
