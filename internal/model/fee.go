package model

import (
	"time"

	"github.com/deppfellow/loan-backoffice/internal/validation"
	"github.com/shopspring/decimal"
)

type ApplicationContainerFee struct {
	ID                       int64           `gorm:"column:ID;primaryKey" json:"iD"`
	ApplicationContainerID   int64           `gorm:"column:ApplicationContainerID" json:"applicationContainerID"`
	FeeTypeID                int64           `gorm:"column:FeeTypeID" json:"feeTypeID"`
	Amount                   decimal.Decimal `gorm:"column:Amount;type:numeric(19,2)" json:"amount"`
	Description              *string         `gorm:"column:Description" json:"description"`
	PartyRoleID              *int64          `gorm:"column:PartyRoleID" json:"partyRoleID"`
	Created                  time.Time       `gorm:"column:Created" json:"created"`
	CreatedByPartyRoleID     int64           `gorm:"column:CreatedByPartyRoleID" json:"createdByPartyRoleID"`
	LastUpdated              time.Time       `gorm:"column:LastUpdated" json:"lastUpdated"`
	LastUpdatedByPartyRoleID int64           `gorm:"column:LastUpdatedByPartyRoleID" json:"lastUpdatedByPartyRoleID"`

	PartyRole *PartyRole `gorm:"foreignKey:PartyRoleID;references:ID" json:"PartyRole"`
}

func (ApplicationContainerFee) TableName() string {
	return "ApplicationContainerFee"
}

// ------------------------------------------------------------

// FeeRequest is the body of POST /application/:id/fee and PUT /fee/:id.
// The path id is the application container on create and the fee on update.
type FeeRequest struct {
	IDParam
	FeeType     IDRef            `json:"feeType"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	PartyRole   *IDRef           `json:"partyRole"`
	Description *string          `json:"description" validate:"omitempty,max=255"`
}

func (r *FeeRequest) Validate() error {
	return validation.Struct(r)
}

// PartyRoleID returns the optional party role reference.
func (r *FeeRequest) PartyRoleID() *int64 {
	if r.PartyRole == nil {
		return nil
	}
	return r.PartyRole.ID
}
