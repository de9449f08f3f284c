package repository

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"gorm.io/gorm"
)

// ConditionRepository calls the ApplicationCondition_* stored functions.
// Rows are passed through untouched.
type ConditionRepository struct {
	db *gorm.DB
}

func NewConditionRepository(db *gorm.DB) *ConditionRepository {
	return &ConditionRepository{db: db}
}

func (r *ConditionRepository) ListForApplication(ctx context.Context, acID, user int64) ([]model.Row, error) {
	return callFunction(ctx, r.db, "ApplicationCondition_RetrieveForApplicationContainerID", acID, user)
}

func (r *ConditionRepository) Retrieve(ctx context.Context, acID, user int64) ([]model.Row, error) {
	return callFunction(ctx, r.db, "ApplicationCondition_Retrieve", acID, user)
}

func (r *ConditionRepository) Configure(ctx context.Context, acID, user int64) ([]model.Row, error) {
	return callFunction(ctx, r.db, "ApplicationCondition_Configure", acID, user)
}

func (r *ConditionRepository) Create(ctx context.Context, acID, user, conditionTypeID int64, notes *string) ([]model.Row, error) {
	return callFunction(ctx, r.db, "ApplicationCondition_Create", acID, user, conditionTypeID, notes)
}

func (r *ConditionRepository) Update(ctx context.Context, id, user int64, met bool, notes *string) ([]model.Row, error) {
	return callFunction(ctx, r.db, "ApplicationCondition_Update", id, user, met, notes)
}

func (r *ConditionRepository) StageMet(ctx context.Context, acID, stage, user int64) ([]model.Row, error) {
	return callFunction(ctx, r.db, "ApplicationCondition_StageMet", acID, stage, user)
}

// StageMetFlag returns nil when the function produced no row.
func (r *ConditionRepository) StageMetFlag(ctx context.Context, acID, stage, user int64) (*model.StageMetFlag, error) {
	var flags []model.StageMetFlag
	if err := scanFunction(ctx, r.db, &flags, "ApplicationCondition_StageMetFlag", acID, stage, user); err != nil {
		return nil, err
	}
	if len(flags) == 0 {
		return nil, nil
	}
	return &flags[0], nil
}

func (r *ConditionRepository) ProcessFromStatus(ctx context.Context, acID, statusTypeID, user int64) ([]model.Row, error) {
	return callFunction(ctx, r.db, "ApplicationCondition_ProcessFromStatus", acID, statusTypeID, user)
}

func (r *ConditionRepository) ProcessFromCondition(ctx context.Context, id, user int64) ([]model.Row, error) {
	return callFunction(ctx, r.db, "ApplicationCondition_ProcessFromCondition", id, user)
}
