package model

import (
	"time"

	"github.com/deppfellow/loan-backoffice/internal/validation"
)

type FinalApprovalProcessType struct {
	ID       int64  `gorm:"column:ID;primaryKey" json:"iD"`
	Name     string `gorm:"column:Name" json:"name"`
	Sequence int    `gorm:"column:Sequence" json:"sequence"`
}

func (FinalApprovalProcessType) TableName() string {
	return "FinalApprovalProcessType"
}

// FinalApprovalProcessHistory is one step of an application's final
// approval. Completed is nil while the step is open.
type FinalApprovalProcessHistory struct {
	ID                         int64      `gorm:"column:ID;primaryKey" json:"iD"`
	ApplicationContainerID     int64      `gorm:"column:ApplicationContainerID" json:"applicationContainerID"`
	FinalApprovalProcessTypeID int64      `gorm:"column:FinalApprovalProcessTypeID" json:"finalApprovalProcessTypeID"`
	Created                    time.Time  `gorm:"column:Created" json:"created"`
	CreatedByPartyRoleID       int64      `gorm:"column:CreatedByPartyRoleID" json:"createdByPartyRoleID"`
	Completed                  *time.Time `gorm:"column:Completed" json:"completed"`
	CompletedByPartyRoleID     *int64     `gorm:"column:CompletedByPartyRoleID" json:"completedByPartyRoleID"`

	FinalApprovalProcessType *FinalApprovalProcessType `gorm:"foreignKey:FinalApprovalProcessTypeID;references:ID" json:"FinalApprovalProcessType"`
	CreatedByPartyRole       *PartyRole                `gorm:"foreignKey:CreatedByPartyRoleID;references:ID" json:"CreatedByPartyRole"`
	CompletedByPartyRole     *PartyRole                `gorm:"foreignKey:CompletedByPartyRoleID;references:ID" json:"CompletedByPartyRole"`
}

func (FinalApprovalProcessHistory) TableName() string {
	return "FinalApprovalProcessHistory"
}

// ------------------------------------------------------------

// SaveFinalApprovalRequest is PUT /finalapproval/:id, id being the
// application container.
type SaveFinalApprovalRequest struct {
	IDParam
	FinalApprovalProcessType    IDRef `json:"finalApprovalProcessType"`
	FinalApprovalProcessHistory IDRef `json:"finalApprovalProcessHistory"`
}

func (r *SaveFinalApprovalRequest) Validate() error {
	return validation.Struct(r)
}

// NextFinalApprovalRequest is GET /finalapproval/:id/next.
type NextFinalApprovalRequest struct {
	IDParam
	FinalApprovalProcessTypeID string `query:"finalApprovalProcessTypeId" json:"-" validate:"omitempty,number"`
}

func (r *NextFinalApprovalRequest) Validate() error {
	return validation.Struct(r)
}

// ProcessTypeID returns the optional type filter, nil when absent.
func (r *NextFinalApprovalRequest) ProcessTypeID() (*int64, bool) {
	if r.FinalApprovalProcessTypeID == "" {
		return nil, true
	}
	id, ok := ParseID(r.FinalApprovalProcessTypeID)
	if !ok {
		return nil, false
	}
	return &id, true
}

// FinalApprovalNotice is the payload of the final approval email job.
type FinalApprovalNotice struct {
	ApplicationContainerID int64  `json:"application_container_id"`
	HistoryID              int64  `json:"history_id"`
	ProcessTypeName        string `json:"process_type_name"`
	PartyRoleID            int64  `json:"party_role_id"`
}
