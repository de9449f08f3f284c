package service

import (
	"context"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/errs"
	"github.com/deppfellow/loan-backoffice/internal/lib/cache"
	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/rs/zerolog"
)

type PartyRoleRepository interface {
	ForExternalUser(ctx context.Context, externalUserID string) (*model.PartyRole, error)
}

// PartyRoleService maps an authenticated Clerk user onto the V8 party
// role every write is attributed to.
type PartyRoleService struct {
	repo  PartyRoleRepository
	cache JSONCache
	ttl   time.Duration
}

func NewPartyRoleService(repo PartyRoleRepository, c JSONCache, ttl time.Duration) *PartyRoleService {
	return &PartyRoleService{repo: repo, cache: c, ttl: ttl}
}

// Resolve returns the party role id of externalUserID. Users without a
// party role are forbidden.
func (s *PartyRoleService) Resolve(ctx context.Context, externalUserID string) (int64, error) {
	logger := zerolog.Ctx(ctx)
	key := cache.Key("party_role", externalUserID)

	var cached int64
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("party role cache read failed")
	}
	if hit {
		return cached, nil
	}

	role, err := s.repo.ForExternalUser(ctx, externalUserID)
	if err != nil {
		return 0, err
	}
	if role == nil {
		return 0, errs.NewForbiddenError("No party role is linked to this user", true)
	}

	if err := s.cache.SetJSON(ctx, key, role.ID, s.ttl); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("party role cache write failed")
	}

	return role.ID, nil
}
