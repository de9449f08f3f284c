package repository

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"gorm.io/gorm"
)

type PoolRepository struct {
	db *gorm.DB
}

func NewPoolRepository(db *gorm.DB) *PoolRepository {
	return &PoolRepository{db: db}
}

func (r *PoolRepository) AutoForApplication(ctx context.Context, acID, user int64) ([]model.Row, error) {
	return callFunction(ctx, r.db, "Pool_AutoForApplication", acID, user)
}
