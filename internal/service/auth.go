package service

import (
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/loan-backoffice/internal/server"
)

// AuthService installs the Clerk secret key used to verify session tokens.
type AuthService struct {
	server *server.Server
}

// NewAuthService passes the Clerk secret key to the SDK. Session tokens
// verified by middleware.RequireAuth are checked against it.
func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server: s,
	}
}
