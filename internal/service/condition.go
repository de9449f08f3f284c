package service

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/model"
)

type ConditionRepository interface {
	ListForApplication(ctx context.Context, acID, user int64) ([]model.Row, error)
	Retrieve(ctx context.Context, acID, user int64) ([]model.Row, error)
	Configure(ctx context.Context, acID, user int64) ([]model.Row, error)
	Create(ctx context.Context, acID, user, conditionTypeID int64, notes *string) ([]model.Row, error)
	Update(ctx context.Context, id, user int64, met bool, notes *string) ([]model.Row, error)
	StageMet(ctx context.Context, acID, stage, user int64) ([]model.Row, error)
	StageMetFlag(ctx context.Context, acID, stage, user int64) (*model.StageMetFlag, error)
	ProcessFromStatus(ctx context.Context, acID, statusTypeID, user int64) ([]model.Row, error)
	ProcessFromCondition(ctx context.Context, id, user int64) ([]model.Row, error)
}

type ConditionService struct {
	repo  ConditionRepository
	audit Auditor
}

func NewConditionService(repo ConditionRepository, audit Auditor) *ConditionService {
	return &ConditionService{repo: repo, audit: audit}
}

// List returns the conditions of an application. No rows is a server
// error: every application is configured with at least one condition.
func (s *ConditionService) List(ctx context.Context, acID, user int64) ([]model.Row, error) {
	rows, err := s.repo.ListForApplication(ctx, acID, user)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, noRows(ctx, "ApplicationCondition_RetrieveForApplicationContainerID")
	}
	return rows, nil
}

func (s *ConditionService) Retrieve(ctx context.Context, id, user int64) ([]model.Row, error) {
	rows, err := s.repo.Retrieve(ctx, id, user)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, noRows(ctx, "ApplicationCondition_Retrieve")
	}
	return rows, nil
}

// Configure (re)builds the condition list of an application.
func (s *ConditionService) Configure(ctx context.Context, acID, user int64) ([]model.Row, error) {
	rows, err := s.repo.Configure(ctx, acID, user)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, noRows(ctx, "ApplicationCondition_Configure")
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityApplication, EntityID: acID, Action: model.AuditActionProcess, PartyRoleID: user})
	return rows, nil
}

func (s *ConditionService) Create(ctx context.Context, acID, user int64, req *model.CreateConditionRequest) (model.Row, error) {
	rows, err := s.repo.Create(ctx, acID, user, req.ConditionType.Value(), req.Notes)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, noRows(ctx, "ApplicationCondition_Create")
	}

	created := rows[0]
	if id, ok := model.RowInt64(created, "iD"); ok {
		s.audit.Record(ctx, AuditEntry{Entity: EntityCondition, EntityID: id, Action: model.AuditActionCreate, PartyRoleID: user})
	}
	return created, nil
}

func (s *ConditionService) Update(ctx context.Context, id, user int64, req *model.UpdateConditionRequest) (model.Row, error) {
	rows, err := s.repo.Update(ctx, id, user, *req.Met, req.Notes)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, notFound("Condition does not exist")
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityCondition, EntityID: id, Action: model.AuditActionUpdate, PartyRoleID: user})
	return rows[0], nil
}

// StageMet lists the conditions still blocking a stage. Empty means the
// stage is clear.
func (s *ConditionService) StageMet(ctx context.Context, acID, stage, user int64) ([]model.Row, error) {
	rows, err := s.repo.StageMet(ctx, acID, stage, user)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.Row{}
	}
	return rows, nil
}

func (s *ConditionService) StageMetFlag(ctx context.Context, acID, stage, user int64) (*model.StageMetFlag, error) {
	flag, err := s.repo.StageMetFlag(ctx, acID, stage, user)
	if err != nil {
		return nil, err
	}
	if flag == nil {
		return nil, noRows(ctx, "ApplicationCondition_StageMetFlag")
	}
	return flag, nil
}

// ProcessFromStatus applies the conditions triggered by an application
// status change.
func (s *ConditionService) ProcessFromStatus(ctx context.Context, acID, statusTypeID, user int64) ([]model.Row, error) {
	rows, err := s.repo.ProcessFromStatus(ctx, acID, statusTypeID, user)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityApplication, EntityID: acID, Action: model.AuditActionProcess, PartyRoleID: user})
	if rows == nil {
		rows = []model.Row{}
	}
	return rows, nil
}

// ProcessFromCondition applies the conditions triggered by another one.
func (s *ConditionService) ProcessFromCondition(ctx context.Context, id, user int64) ([]model.Row, error) {
	rows, err := s.repo.ProcessFromCondition(ctx, id, user)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityCondition, EntityID: id, Action: model.AuditActionProcess, PartyRoleID: user})
	if rows == nil {
		rows = []model.Row{}
	}
	return rows, nil
}
