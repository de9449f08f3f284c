package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the HTTP header carrying the request correlation ID.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the key the ID is stored under in the echo context.
	RequestIDKey = "request_id"
)

// RequestID returns an echo middleware that gives every request an ID.
//
// Behavior:
//   - If the incoming request has an X-Request-ID header, reuse it.
//   - Otherwise generate a new UUID.
//   - Store it in the echo context for logs and handlers.
//   - Set it on the response header so clients can quote it.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Reuse the upstream ID (load balancer, caller) when present.
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDKey, requestID)

			// Echo it back so support can correlate a client report with our logs.
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from the echo context.
//
// Returns an empty string when RequestID did not run.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
