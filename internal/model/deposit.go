package model

import (
	"time"

	"github.com/deppfellow/loan-backoffice/internal/errs"
	"github.com/deppfellow/loan-backoffice/internal/validation"
	"github.com/shopspring/decimal"
)

type Deposit struct {
	ID                       int64           `gorm:"column:ID;primaryKey" json:"iD"`
	LoanID                   int64           `gorm:"column:LoanID" json:"loanID"`
	DepositTypeID            int64           `gorm:"column:DepositTypeID" json:"depositTypeID"`
	Amount                   decimal.Decimal `gorm:"column:Amount;type:numeric(19,2)" json:"amount"`
	Active                   bool            `gorm:"column:Active" json:"active"`
	Created                  time.Time       `gorm:"column:Created" json:"created"`
	CreatedByPartyRoleID     int64           `gorm:"column:CreatedByPartyRoleID" json:"createdByPartyRoleID"`
	LastUpdated              time.Time       `gorm:"column:LastUpdated" json:"lastUpdated"`
	LastUpdatedByPartyRoleID int64           `gorm:"column:LastUpdatedByPartyRoleID" json:"lastUpdatedByPartyRoleID"`
}

func (Deposit) TableName() string {
	return "Deposit"
}

// ------------------------------------------------------------

// CreateDepositRequest is POST /loan/:id/deposit.
//
// LoanID has no validate tag: ValidatePath reports a missing or invalid
// loan id as a server error before the body is looked at.
type CreateDepositRequest struct {
	LoanID      string           `param:"id" json:"-"`
	DepositType IDRef            `json:"depositType"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Active      *bool            `json:"active" validate:"required"`
}

// ValidatePath runs before the body is decoded: a missing or invalid loan
// id is a server error whatever the body holds.
func (r *CreateDepositRequest) ValidatePath() error {
	if _, ok := ParseID(r.LoanID); !ok {
		return errs.NewInternalServerError()
	}
	return nil
}

func (r *CreateDepositRequest) Validate() error {
	if err := r.ValidatePath(); err != nil {
		return err
	}
	return validation.Struct(r)
}

// UpdateDepositRequest is PUT /deposit/:id.
type UpdateDepositRequest struct {
	IDParam
	Loan        IDRef            `json:"loan"`
	DepositType IDRef            `json:"depositType"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Active      *bool            `json:"active" validate:"required"`
}

func (r *UpdateDepositRequest) Validate() error {
	return validation.Struct(r)
}
