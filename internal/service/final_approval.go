package service

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/rs/zerolog"
)

type FinalApprovalRepository interface {
	ListByApplication(ctx context.Context, acID int64) ([]model.FinalApprovalProcessHistory, error)
	GetByID(ctx context.Context, id int64) (*model.FinalApprovalProcessHistory, error)
	Latest(ctx context.Context, acID int64) (*model.FinalApprovalProcessHistory, error)
	UpdateCreate(ctx context.Context, acID, user, processTypeID, historyID int64) ([]model.Row, error)
	Reset(ctx context.Context, id, user int64) error
	DetermineNext(ctx context.Context, acID, user int64, processTypeID *int64) ([]model.Row, error)
}

// Notifier queues the email sent after each final approval step.
type Notifier interface {
	EnqueueFinalApprovalNotice(ctx context.Context, notice model.FinalApprovalNotice) error
}

type FinalApprovalService struct {
	repo     FinalApprovalRepository
	audit    Auditor
	notifier Notifier
}

func NewFinalApprovalService(repo FinalApprovalRepository, audit Auditor, notifier Notifier) *FinalApprovalService {
	return &FinalApprovalService{repo: repo, audit: audit, notifier: notifier}
}

func (s *FinalApprovalService) List(ctx context.Context, acID int64) ([]model.FinalApprovalProcessHistory, error) {
	history, err := s.repo.ListByApplication(ctx, acID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, notFound("No final approval history found for this application")
	}
	return history, nil
}

func (s *FinalApprovalService) Get(ctx context.Context, id int64) (*model.FinalApprovalProcessHistory, error) {
	history, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return nil, notFound("Final approval history does not exist")
	}
	return history, nil
}

func (s *FinalApprovalService) Latest(ctx context.Context, acID int64) (*model.FinalApprovalProcessHistory, error) {
	history, err := s.repo.Latest(ctx, acID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return nil, notFound("No final approval history found for this application")
	}
	return history, nil
}

// Save completes the current step of an application and opens the next
// one, then returns the history row the stored function reports.
//
// Any database failure is a 500 here, constraint violations included.
func (s *FinalApprovalService) Save(ctx context.Context, acID, user int64, req *model.SaveFinalApprovalRequest) (*model.FinalApprovalProcessHistory, error) {
	rows, err := s.repo.UpdateCreate(ctx, acID, user,
		req.FinalApprovalProcessType.Value(),
		req.FinalApprovalProcessHistory.Value(),
	)
	if err != nil {
		return nil, internalError(ctx, err, "final approval update/create failed")
	}
	if len(rows) == 0 {
		return nil, noRows(ctx, "FinalApprovalProcess_UpdateCreate")
	}

	historyID, ok := model.RowInt64(rows[0], "iD")
	if !ok {
		return nil, noRows(ctx, "FinalApprovalProcess_UpdateCreate")
	}

	history, err := s.repo.GetByID(ctx, historyID)
	if err != nil {
		return nil, internalError(ctx, err, "final approval retrieve after save failed")
	}
	if history == nil {
		return nil, notFound("Final approval history does not exist")
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityFinalApproval, EntityID: history.ID, Action: model.AuditActionUpdate, PartyRoleID: user})
	s.notify(ctx, history, user)

	return history, nil
}

// Reset reopens a history row and returns it.
func (s *FinalApprovalService) Reset(ctx context.Context, id, user int64) (*model.FinalApprovalProcessHistory, error) {
	if err := s.repo.Reset(ctx, id, user); err != nil {
		return nil, internalError(ctx, err, "final approval reset failed")
	}

	history, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, internalError(ctx, err, "final approval retrieve after reset failed")
	}
	if history == nil {
		return nil, notFound("Final approval history does not exist")
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityFinalApproval, EntityID: id, Action: model.AuditActionReset, PartyRoleID: user})
	return history, nil
}

// Next lists the steps that may follow the current one. A nil
// processTypeID leaves the choice to the stored function.
func (s *FinalApprovalService) Next(ctx context.Context, acID, user int64, processTypeID *int64) ([]model.Row, error) {
	rows, err := s.repo.DetermineNext(ctx, acID, user, processTypeID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, notFound("No next final approval step")
	}
	return rows, nil
}

func (s *FinalApprovalService) notify(ctx context.Context, history *model.FinalApprovalProcessHistory, user int64) {
	if s.notifier == nil {
		return
	}

	notice := model.FinalApprovalNotice{
		ApplicationContainerID: history.ApplicationContainerID,
		HistoryID:              history.ID,
		PartyRoleID:            user,
	}
	if history.FinalApprovalProcessType != nil {
		notice.ProcessTypeName = history.FinalApprovalProcessType.Name
	}

	if err := s.notifier.EnqueueFinalApprovalNotice(ctx, notice); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Int64("history_id", history.ID).
			Msg("failed to enqueue final approval notice")
	}
}
