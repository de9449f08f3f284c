package middleware

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// PartyRoleIDKey is the echo context key holding the caller's party role ID.
const PartyRoleIDKey = "party_role_id"

// PartyRoleResolver maps an authenticated user onto a V8 party role id.
type PartyRoleResolver interface {
	Resolve(ctx context.Context, externalUserID string) (int64, error)
}

type PartyRoleMiddleware struct {
	resolver PartyRoleResolver
}

func NewPartyRoleMiddleware(resolver PartyRoleResolver) *PartyRoleMiddleware {
	return &PartyRoleMiddleware{resolver: resolver}
}

// RequirePartyRole must run after RequireAuth. Every handler behind it
// can rely on GetPartyRoleID.
func (m *PartyRoleMiddleware) RequirePartyRole(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := GetUserID(c)
		if userID == "" {
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		partyRoleID, err := m.resolver.Resolve(c.Request().Context(), userID)
		if err != nil {
			return err
		}

		c.Set(PartyRoleIDKey, partyRoleID)
		enrichLogger(c, func(l zerolog.Context) zerolog.Context {
			return l.Int64("party_role_id", partyRoleID)
		})

		return next(c)
	}
}

// GetPartyRoleID returns the party role ID set by RequirePartyRole, or 0.
func GetPartyRoleID(c echo.Context) int64 {
	if id, ok := c.Get(PartyRoleIDKey).(int64); ok {
		return id
	}
	return 0
}
