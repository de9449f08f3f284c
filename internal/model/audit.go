package model

import (
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditActionCreate  AuditAction = "create"
	AuditActionUpdate  AuditAction = "update"
	AuditActionDelete  AuditAction = "delete"
	AuditActionReset   AuditAction = "reset"
	AuditActionProcess AuditAction = "process"
)

// ServiceAudit records one mutation made through the service.
// Unlike the V8 tables it is owned and migrated by this service.
type ServiceAudit struct {
	ID          uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	Entity      string      `gorm:"column:entity"`
	EntityID    int64       `gorm:"column:entity_id"`
	Action      AuditAction `gorm:"column:action"`
	PartyRoleID int64       `gorm:"column:party_role_id"`
	CreatedAt   time.Time   `gorm:"column:created_at"`
}

func (ServiceAudit) TableName() string {
	return "service_audit"
}
