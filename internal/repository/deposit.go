package repository

import (
	"context"
	"errors"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DepositRepository struct {
	db *gorm.DB
}

func NewDepositRepository(db *gorm.DB) *DepositRepository {
	return &DepositRepository{db: db}
}

func (r *DepositRepository) ListByLoan(ctx context.Context, loanID int64) ([]model.Deposit, error) {
	var deposits []model.Deposit
	if err := r.db.WithContext(ctx).
		Where(eq("LoanID", loanID)).
		Find(&deposits).Error; err != nil {
		return nil, err
	}
	return deposits, nil
}

// GetByID returns nil when the deposit does not exist.
func (r *DepositRepository) GetByID(ctx context.Context, id int64) (*model.Deposit, error) {
	var deposit model.Deposit
	if err := r.db.WithContext(ctx).
		Where(eq("ID", id)).
		Take(&deposit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deposit, nil
}

// Create inserts deposit and fills in its generated ID.
func (r *DepositRepository) Create(ctx context.Context, deposit *model.Deposit) error {
	return r.db.WithContext(ctx).Create(deposit).Error
}

// DepositChanges are the columns an update may touch.
type DepositChanges struct {
	LoanID                   int64
	DepositTypeID            int64
	Amount                   decimal.Decimal
	Active                   bool
	LastUpdated              time.Time
	LastUpdatedByPartyRoleID int64
}

// Update applies changes and reports whether the deposit existed.
// Created and CreatedByPartyRoleID are never written.
func (r *DepositRepository) Update(ctx context.Context, id int64, changes DepositChanges) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Deposit{}).
		Where(eq("ID", id)).
		Updates(map[string]any{
			"LoanID":                   changes.LoanID,
			"DepositTypeID":            changes.DepositTypeID,
			"Amount":                   changes.Amount,
			"Active":                   changes.Active,
			"LastUpdated":              changes.LastUpdated,
			"LastUpdatedByPartyRoleID": changes.LastUpdatedByPartyRoleID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete runs LoanDeposit_Delete, which returns the removed row(s).
func (r *DepositRepository) Delete(ctx context.Context, id int64) ([]model.Row, error) {
	return callFunction(ctx, r.db, "LoanDeposit_Delete", id)
}
