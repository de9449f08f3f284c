package service

import (
	"context"
	"strconv"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/lib/cache"
	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/rs/zerolog"
)

type ThirdPartyRepository interface {
	TrackMyApplications(ctx context.Context, partyRoleID int64) ([]model.TrackRow, error)
}

// JSONCache is the subset of cache.Cache the services use.
type JSONCache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

type ThirdPartyService struct {
	repo  ThirdPartyRepository
	cache JSONCache
	ttl   time.Duration
}

func NewThirdPartyService(repo ThirdPartyRepository, c JSONCache, ttl time.Duration) *ThirdPartyService {
	return &ThirdPartyService{repo: repo, cache: c, ttl: ttl}
}

// Track returns the applications a third party originator is following.
func (s *ThirdPartyService) Track(ctx context.Context, oprID int64) ([]model.TrackItem, error) {
	logger := zerolog.Ctx(ctx)
	key := cache.Key("track", strconv.FormatInt(oprID, 10))

	var items []model.TrackItem
	hit, err := s.cache.GetJSON(ctx, key, &items)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("track report cache read failed")
	}
	if hit && len(items) > 0 {
		return items, nil
	}

	rows, err := s.repo.TrackMyApplications(ctx, oprID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, noRows(ctx, "Report_TrackMyApplications_ByUserPartyRoleID")
	}

	items = make([]model.TrackItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.Item())
	}

	if err := s.cache.SetJSON(ctx, key, items, s.ttl); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("track report cache write failed")
	}

	return items, nil
}
