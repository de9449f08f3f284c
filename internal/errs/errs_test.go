package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("no session", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("no party role", true), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("Deposit does not exist", true, nil), http.StatusNotFound, "NOT_FOUND"},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "DEPOSIT_INVALID"
	fieldErrors := []FieldError{{Field: "amount", Error: "is required"}}

	err := NewBadRequestError("Validation failed", true, &code, fieldErrors, nil)

	assert.Equal(t, code, err.Code)
	assert.Equal(t, fieldErrors, err.Errors)
	assert.True(t, err.Override)
}

func TestHTTPError_Is(t *testing.T) {
	wrapped := fmt.Errorf("retrieving deposit: %w", NewNotFoundError("Deposit does not exist", true, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Deposit does not exist", httpErr.Error())
}

func TestHTTPError_WithMessage(t *testing.T) {
	original := NewInternalServerError()
	copied := original.WithMessage("stored function returned no rows")

	assert.Equal(t, "stored function returned no rows", copied.Message)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), original.Message)
	assert.Equal(t, original.Status, copied.Status)
}
