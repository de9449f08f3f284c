package model

import "github.com/shopspring/decimal"

type Liability struct {
	ID              int64           `gorm:"column:ID;primaryKey" json:"iD"`
	HouseholdID     int64           `gorm:"column:HouseholdID" json:"householdID"`
	LiabilityTypeID int64           `gorm:"column:LiabilityTypeID" json:"liabilityTypeID"`
	Creditor        *string         `gorm:"column:Creditor" json:"creditor"`
	Balance         decimal.Decimal `gorm:"column:Balance;type:numeric(19,2)" json:"balance"`
	MonthlyPayment  decimal.Decimal `gorm:"column:MonthlyPayment;type:numeric(19,2)" json:"monthlyPayment"`
}

func (Liability) TableName() string {
	return "Liability"
}

// DefaultLiabilityTypeID is used when the request does not name a type.
const DefaultLiabilityTypeID int64 = 1
