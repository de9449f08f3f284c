package service

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/model"
)

type LiabilityRepository interface {
	ListByHousehold(ctx context.Context, householdID, liabilityTypeID int64) ([]model.Liability, error)
}

type FinancialService struct {
	repo LiabilityRepository
}

func NewFinancialService(repo LiabilityRepository) *FinancialService {
	return &FinancialService{repo: repo}
}

// Liabilities lists the liabilities of a household. A nil typeID means
// model.DefaultLiabilityTypeID.
func (s *FinancialService) Liabilities(ctx context.Context, householdID int64, typeID *int64) ([]model.Liability, error) {
	liabilityTypeID := model.DefaultLiabilityTypeID
	if typeID != nil {
		liabilityTypeID = *typeID
	}

	liabilities, err := s.repo.ListByHousehold(ctx, householdID, liabilityTypeID)
	if err != nil {
		return nil, err
	}
	if len(liabilities) == 0 {
		return nil, notFound("No liabilities found for this household")
	}
	return liabilities, nil
}
