package repository

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"gorm.io/gorm"
)

type ThirdPartyRepository struct {
	db *gorm.DB
}

func NewThirdPartyRepository(db *gorm.DB) *ThirdPartyRepository {
	return &ThirdPartyRepository{db: db}
}

func (r *ThirdPartyRepository) TrackMyApplications(ctx context.Context, partyRoleID int64) ([]model.TrackRow, error) {
	var rows []model.TrackRow
	if err := scanFunction(ctx, r.db, &rows, "Report_TrackMyApplications_ByUserPartyRoleID", partyRoleID); err != nil {
		return nil, err
	}
	return rows, nil
}
