package service

import (
	"context"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/deppfellow/loan-backoffice/internal/repository"
)

type DepositRepository interface {
	ListByLoan(ctx context.Context, loanID int64) ([]model.Deposit, error)
	GetByID(ctx context.Context, id int64) (*model.Deposit, error)
	Create(ctx context.Context, deposit *model.Deposit) error
	Update(ctx context.Context, id int64, changes repository.DepositChanges) (bool, error)
	Delete(ctx context.Context, id int64) ([]model.Row, error)
}

type DepositService struct {
	repo  DepositRepository
	audit Auditor
	now   clock
}

func NewDepositService(repo DepositRepository, audit Auditor) *DepositService {
	return &DepositService{repo: repo, audit: audit, now: time.Now}
}

func (s *DepositService) List(ctx context.Context, loanID int64) ([]model.Deposit, error) {
	deposits, err := s.repo.ListByLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if len(deposits) == 0 {
		return nil, notFound("No deposits found for this loan")
	}
	return deposits, nil
}

func (s *DepositService) Get(ctx context.Context, id int64) (*model.Deposit, error) {
	deposit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deposit == nil {
		return nil, notFound("Deposit does not exist")
	}
	return deposit, nil
}

// Create stamps both the created and last updated pairs with user.
func (s *DepositService) Create(ctx context.Context, loanID, user int64, req *model.CreateDepositRequest) (*model.CreatedResponse, error) {
	when := s.now()

	deposit := &model.Deposit{
		LoanID:                   loanID,
		DepositTypeID:            req.DepositType.Value(),
		Amount:                   *req.Amount,
		Active:                   *req.Active,
		Created:                  when,
		CreatedByPartyRoleID:     user,
		LastUpdated:              when,
		LastUpdatedByPartyRoleID: user,
	}

	if err := s.repo.Create(ctx, deposit); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityDeposit, EntityID: deposit.ID, Action: model.AuditActionCreate, PartyRoleID: user})
	return &model.CreatedResponse{ID: deposit.ID}, nil
}

// Update restamps the last updated pair. The created pair is immutable.
func (s *DepositService) Update(ctx context.Context, id, user int64, req *model.UpdateDepositRequest) error {
	found, err := s.repo.Update(ctx, id, repository.DepositChanges{
		LoanID:                   req.Loan.Value(),
		DepositTypeID:            req.DepositType.Value(),
		Amount:                   *req.Amount,
		Active:                   *req.Active,
		LastUpdated:              s.now(),
		LastUpdatedByPartyRoleID: user,
	})
	if err != nil {
		return err
	}
	if !found {
		return notFound("Deposit does not exist")
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityDeposit, EntityID: id, Action: model.AuditActionUpdate, PartyRoleID: user})
	return nil
}

// Delete runs LoanDeposit_Delete. Nothing returned means nothing was
// deleted, which the function only does on failure.
func (s *DepositService) Delete(ctx context.Context, id, user int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return noRows(ctx, "LoanDeposit_Delete")
	}

	s.audit.Record(ctx, AuditEntry{Entity: EntityDeposit, EntityID: id, Action: model.AuditActionDelete, PartyRoleID: user})
	return nil
}
