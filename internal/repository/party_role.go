package repository

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"gorm.io/gorm"
)

type PartyRoleRepository struct {
	db *gorm.DB
}

func NewPartyRoleRepository(db *gorm.DB) *PartyRoleRepository {
	return &PartyRoleRepository{db: db}
}

// ForExternalUser maps an identity provider user id onto its V8 party
// role. It returns nil when the user has no party role.
func (r *PartyRoleRepository) ForExternalUser(ctx context.Context, externalUserID string) (*model.PartyRole, error) {
	var roles []model.PartyRole
	if err := scanFunction(ctx, r.db, &roles, "PartyRole_RetrieveForExternalUser", externalUserID); err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, nil
	}
	return &roles[0], nil
}
