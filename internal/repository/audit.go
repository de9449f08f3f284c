package repository

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, entry *model.ServiceAudit) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
