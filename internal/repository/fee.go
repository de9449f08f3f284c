package repository

import (
	"context"
	"errors"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeeRepository struct {
	db *gorm.DB
}

func NewFeeRepository(db *gorm.DB) *FeeRepository {
	return &FeeRepository{db: db}
}

func (r *FeeRepository) withPartyRole(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Joins("PartyRole")
}

func (r *FeeRepository) ListByApplication(ctx context.Context, acID int64) ([]model.ApplicationContainerFee, error) {
	var fees []model.ApplicationContainerFee
	if err := r.withPartyRole(ctx).
		Where(eq("ApplicationContainerID", acID)).
		Find(&fees).Error; err != nil {
		return nil, err
	}
	return fees, nil
}

// GetByID returns nil when the fee does not exist.
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*model.ApplicationContainerFee, error) {
	var fee model.ApplicationContainerFee
	if err := r.withPartyRole(ctx).
		Where(eq("ID", id)).
		Take(&fee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fee, nil
}

func (r *FeeRepository) Create(ctx context.Context, fee *model.ApplicationContainerFee) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(fee).Error
}

// FeeChanges are the columns an update may touch.
type FeeChanges struct {
	FeeTypeID                int64
	Amount                   decimal.Decimal
	PartyRoleID              *int64
	Description              *string
	LastUpdated              time.Time
	LastUpdatedByPartyRoleID int64
}

// Update reports whether the fee existed.
func (r *FeeRepository) Update(ctx context.Context, id int64, changes FeeChanges) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.ApplicationContainerFee{}).
		Where(eq("ID", id)).
		Updates(map[string]any{
			"FeeTypeID":                changes.FeeTypeID,
			"Amount":                   changes.Amount,
			"PartyRoleID":              changes.PartyRoleID,
			"Description":              changes.Description,
			"LastUpdated":              changes.LastUpdated,
			"LastUpdatedByPartyRoleID": changes.LastUpdatedByPartyRoleID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete reports whether a fee was removed.
func (r *FeeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where(eq("ID", id)).
		Delete(&model.ApplicationContainerFee{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
