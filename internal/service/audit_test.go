package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAuditRepository struct {
	mock.Mock
}

func (m *mockAuditRepository) Create(ctx context.Context, entry *model.ServiceAudit) error {
	return m.Called(ctx, entry).Error(0)
}

func TestAuditService_Record(t *testing.T) {
	entry := AuditEntry{Entity: EntityDeposit, EntityID: 7, Action: model.AuditActionCreate, PartyRoleID: 42}

	t.Run("writes a row", func(t *testing.T) {
		repo := &mockAuditRepository{}
		repo.On("Create", mock.Anything, mock.MatchedBy(func(row *model.ServiceAudit) bool {
			return row.ID != uuid.Nil &&
				row.Entity == EntityDeposit &&
				row.EntityID == 7 &&
				row.Action == model.AuditActionCreate &&
				row.PartyRoleID == 42 &&
				row.CreatedAt.Equal(fixedNow)
		})).Return(nil)

		svc := NewAuditService(repo)
		svc.now = fixedClock
		svc.Record(context.Background(), entry)

		repo.AssertExpectations(t)
	})

	t.Run("swallows repository errors", func(t *testing.T) {
		repo := &mockAuditRepository{}
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("relation does not exist"))

		svc := NewAuditService(repo)
		assert.NotPanics(t, func() { svc.Record(context.Background(), entry) })
		repo.AssertExpectations(t)
	})
}
