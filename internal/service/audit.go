package service

import (
	"context"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	EntityCondition     = "condition"
	EntityApplication   = "application"
	EntityDeposit       = "deposit"
	EntityFee           = "fee"
	EntityFinalApproval = "final_approval"
)

type AuditEntry struct {
	Entity      string
	EntityID    int64
	Action      model.AuditAction
	PartyRoleID int64
}

type AuditRepository interface {
	Create(ctx context.Context, entry *model.ServiceAudit) error
}

type AuditService struct {
	repo AuditRepository
	now  clock
}

func NewAuditService(repo AuditRepository) *AuditService {
	return &AuditService{repo: repo, now: time.Now}
}

// Record writes entry to service_audit. Failures are logged only.
func (s *AuditService) Record(ctx context.Context, entry AuditEntry) {
	row := &model.ServiceAudit{
		ID:          uuid.New(),
		Entity:      entry.Entity,
		EntityID:    entry.EntityID,
		Action:      entry.Action,
		PartyRoleID: entry.PartyRoleID,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Create(ctx, row); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("entity", entry.Entity).
			Int64("entity_id", entry.EntityID).
			Str("action", string(entry.Action)).
			Msg("failed to write service audit")
	}
}
