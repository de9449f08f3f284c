package model

import "github.com/deppfellow/loan-backoffice/internal/validation"

// Condition rows are whatever the ApplicationCondition_* functions return.
// The service never interprets them.

// CreateConditionRequest is POST /application/:id/condition.
type CreateConditionRequest struct {
	IDParam
	ConditionType IDRef   `json:"conditionType"`
	Notes         *string `json:"notes"`
}

func (r *CreateConditionRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateConditionRequest is PUT /condition/:id.
type UpdateConditionRequest struct {
	IDParam
	Met   *bool   `json:"met" validate:"required"`
	Notes *string `json:"notes"`
}

func (r *UpdateConditionRequest) Validate() error {
	return validation.Struct(r)
}

// StageRequest addresses one workflow stage of an application.
type StageRequest struct {
	IDParam
	Stage string `param:"stage" json:"-" validate:"required,number"`
}

func (r *StageRequest) Validate() error {
	return validation.Struct(r)
}

// ProcessFromStatusRequest is POST /application/:id/conditions/process/status/:statusId.
type ProcessFromStatusRequest struct {
	IDParam
	StatusID string `param:"statusId" json:"-" validate:"required,number"`
}

func (r *ProcessFromStatusRequest) Validate() error {
	return validation.Struct(r)
}

// StageMetFlag reports whether every condition of a stage is met.
type StageMetFlag struct {
	Met bool `gorm:"column:met" json:"met"`
}
