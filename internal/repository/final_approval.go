package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FinalApprovalRepository struct {
	db *gorm.DB
}

func NewFinalApprovalRepository(db *gorm.DB) *FinalApprovalRepository {
	return &FinalApprovalRepository{db: db}
}

// withAssociations joins the process type and both party roles.
func (r *FinalApprovalRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("FinalApprovalProcessType").
		Joins("CreatedByPartyRole").
		Joins("CompletedByPartyRole")
}

// ListByApplication returns the history of an application, oldest first.
func (r *FinalApprovalRepository) ListByApplication(ctx context.Context, acID int64) ([]model.FinalApprovalProcessHistory, error) {
	var history []model.FinalApprovalProcessHistory
	if err := r.withAssociations(ctx).
		Where(eq("ApplicationContainerID", acID)).
		Order(clause.OrderByColumn{Column: column("Created")}).
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

// GetByID returns nil when the history row does not exist.
func (r *FinalApprovalRepository) GetByID(ctx context.Context, id int64) (*model.FinalApprovalProcessHistory, error) {
	var history model.FinalApprovalProcessHistory
	if err := r.withAssociations(ctx).
		Where(eq("ID", id)).
		Take(&history).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &history, nil
}

// Latest returns the newest history row of an application, or nil.
func (r *FinalApprovalRepository) Latest(ctx context.Context, acID int64) (*model.FinalApprovalProcessHistory, error) {
	var history model.FinalApprovalProcessHistory
	if err := r.withAssociations(ctx).
		Where(eq("ApplicationContainerID", acID)).
		Order(clause.OrderByColumn{Column: column("Created"), Desc: true}).
		Take(&history).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &history, nil
}

// UpdateCreate completes the open step and opens the next one.
// The returned rows carry the "iD" of the resulting history row.
func (r *FinalApprovalRepository) UpdateCreate(ctx context.Context, acID, user, processTypeID, historyID int64) ([]model.Row, error) {
	return callFunction(ctx, r.db, "FinalApprovalProcess_UpdateCreate", acID, user, processTypeID, historyID)
}

// Reset reopens the history row id.
func (r *FinalApprovalRepository) Reset(ctx context.Context, id, user int64) error {
	_, err := callFunction(ctx, r.db, "FinalApprovalProcess_Reset", id, user)
	return err
}

// DetermineNext lists the candidate next steps. A nil processTypeID is
// passed as SQL NULL.
func (r *FinalApprovalRepository) DetermineNext(ctx context.Context, acID, user int64, processTypeID *int64) ([]model.Row, error) {
	return callFunction(ctx, r.db, "FinalApprovalProcess_DetermineNext", acID, user, processTypeID)
}
