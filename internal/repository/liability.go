package repository

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"gorm.io/gorm"
)

type LiabilityRepository struct {
	db *gorm.DB
}

func NewLiabilityRepository(db *gorm.DB) *LiabilityRepository {
	return &LiabilityRepository{db: db}
}

func (r *LiabilityRepository) ListByHousehold(ctx context.Context, householdID, liabilityTypeID int64) ([]model.Liability, error) {
	var liabilities []model.Liability
	if err := r.db.WithContext(ctx).
		Where(eq("HouseholdID", householdID)).
		Where(eq("LiabilityTypeID", liabilityTypeID)).
		Find(&liabilities).Error; err != nil {
		return nil, err
	}
	return liabilities, nil
}
