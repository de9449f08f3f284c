package service

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/model"
)

type PoolRepository interface {
	AutoForApplication(ctx context.Context, acID, user int64) ([]model.Row, error)
}

type PoolService struct {
	repo  PoolRepository
	audit Auditor
}

func NewPoolService(repo PoolRepository, audit Auditor) *PoolService {
	return &PoolService{repo: repo, audit: audit}
}

// AutoPool assigns an application to the pools it qualifies for.
func (s *PoolService) AutoPool(ctx context.Context, acID, user int64) ([]model.Row, error) {
	rows, err := s.repo.AutoForApplication(ctx, acID, user)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, noRows(ctx, "Pool_AutoForApplication")
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityApplication, EntityID: acID, Action: model.AuditActionProcess, PartyRoleID: user})
	return rows, nil
}
