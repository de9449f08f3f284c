package model

import "github.com/deppfellow/loan-backoffice/internal/validation"

// IDParam binds the :id path segment.
type IDParam struct {
	ID string `param:"id" json:"-" validate:"required,number"`
}

func (p *IDParam) Validate() error {
	return validation.Struct(p)
}

// IDRef is the {"id": n} shape clients use to reference another row.
type IDRef struct {
	ID *int64 `json:"id" validate:"required,min=0"`
}

// Value returns the referenced id, or zero when absent.
func (r *IDRef) Value() int64 {
	if r == nil || r.ID == nil {
		return 0
	}
	return *r.ID
}

// CreatedResponse is returned by create routes.
type CreatedResponse struct {
	ID int64 `json:"iD"`
}

// TrackRequest is GET /thirdparty/track/:oprid.
type TrackRequest struct {
	OprID string `param:"oprid" json:"-" validate:"required,number"`
}

func (r *TrackRequest) Validate() error {
	return validation.Struct(r)
}

// LiabilityRequest is GET /financial/:id/liability.
type LiabilityRequest struct {
	IDParam
	LiabilityTypeID string `query:"liabilityTypeId" json:"-" validate:"omitempty,number"`
}

func (r *LiabilityRequest) Validate() error {
	return validation.Struct(r)
}
