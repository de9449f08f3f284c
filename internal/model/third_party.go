package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrackRow is one row of Report_TrackMyApplications_ByUserPartyRoleID.
type TrackRow struct {
	ApplicationID             int64               `gorm:"column:applicationID"`
	BorrowerName              string              `gorm:"column:borrowerName"`
	Created                   time.Time           `gorm:"column:created"`
	LoanAmount                decimal.NullDecimal `gorm:"column:loanAmount"`
	ExternalLeadID            *string             `gorm:"column:externalLeadID"`
	ProductCategoryID         *int64              `gorm:"column:productCategoryID"`
	RetailApplicationID       *int64              `gorm:"column:retailApplicationID"`
	ApplicationStatusTypeName string              `gorm:"column:applicationStatusTypeName"`
}

// TrackItem is the client facing shape of a TrackRow.
type TrackItem struct {
	ID                        int64               `json:"id"`
	Name                      string              `json:"name"`
	Created                   time.Time           `json:"created"`
	Amount                    decimal.NullDecimal `json:"amount"`
	ELID                      *string             `json:"elid"`
	PCID                      *int64              `json:"pcid"`
	RAID                      *int64              `json:"raid"`
	ApplicationStatusTypeName string              `json:"applicationStatusTypeName"`
}

func (r TrackRow) Item() TrackItem {
	return TrackItem{
		ID:                        r.ApplicationID,
		Name:                      r.BorrowerName,
		Created:                   r.Created,
		Amount:                    r.LoanAmount,
		ELID:                      r.ExternalLeadID,
		PCID:                      r.ProductCategoryID,
		RAID:                      r.RetailApplicationID,
		ApplicationStatusTypeName: r.ApplicationStatusTypeName,
	}
}
