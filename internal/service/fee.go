package service

import (
	"context"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/deppfellow/loan-backoffice/internal/repository"
)

type FeeRepository interface {
	ListByApplication(ctx context.Context, acID int64) ([]model.ApplicationContainerFee, error)
	GetByID(ctx context.Context, id int64) (*model.ApplicationContainerFee, error)
	Create(ctx context.Context, fee *model.ApplicationContainerFee) error
	Update(ctx context.Context, id int64, changes repository.FeeChanges) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type FeeService struct {
	repo  FeeRepository
	audit Auditor
	now   clock
}

func NewFeeService(repo FeeRepository, audit Auditor) *FeeService {
	return &FeeService{repo: repo, audit: audit, now: time.Now}
}

func (s *FeeService) List(ctx context.Context, acID int64) ([]model.ApplicationContainerFee, error) {
	fees, err := s.repo.ListByApplication(ctx, acID)
	if err != nil {
		return nil, err
	}
	if len(fees) == 0 {
		return nil, notFound("No fees found for this application")
	}
	return fees, nil
}

func (s *FeeService) Get(ctx context.Context, id int64) (*model.ApplicationContainerFee, error) {
	fee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return nil, notFound("Fee does not exist")
	}
	return fee, nil
}

func (s *FeeService) Create(ctx context.Context, acID, user int64, req *model.FeeRequest) (*model.CreatedResponse, error) {
	when := s.now()

	fee := &model.ApplicationContainerFee{
		ApplicationContainerID:   acID,
		FeeTypeID:                req.FeeType.Value(),
		Amount:                   *req.Amount,
		Description:              req.Description,
		PartyRoleID:              req.PartyRoleID(),
		Created:                  when,
		CreatedByPartyRoleID:     user,
		LastUpdated:              when,
		LastUpdatedByPartyRoleID: user,
	}

	if err := s.repo.Create(ctx, fee); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityFee, EntityID: fee.ID, Action: model.AuditActionCreate, PartyRoleID: user})
	return &model.CreatedResponse{ID: fee.ID}, nil
}

func (s *FeeService) Update(ctx context.Context, id, user int64, req *model.FeeRequest) error {
	found, err := s.repo.Update(ctx, id, repository.FeeChanges{
		FeeTypeID:                req.FeeType.Value(),
		Amount:                   *req.Amount,
		PartyRoleID:              req.PartyRoleID(),
		Description:              req.Description,
		LastUpdated:              s.now(),
		LastUpdatedByPartyRoleID: user,
	})
	if err != nil {
		return err
	}
	if !found {
		return notFound("Fee does not exist")
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityFee, EntityID: id, Action: model.AuditActionUpdate, PartyRoleID: user})
	return nil
}

func (s *FeeService) Delete(ctx context.Context, id, user int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("Fee does not exist")
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityFee, EntityID: id, Action: model.AuditActionDelete, PartyRoleID: user})
	return nil
}
