//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// RequestStatus tracks the review state of an enrollment request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusDenied   RequestStatus = "denied"
)

// Valid reports whether the request status is supported.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusDenied:
		return true
	default:
		return false
	}
}

// BenefitRequest is an employee's enrollment request for one benefit plan.
// BenefitName and EmployeeName are joined projections of the referenced rows;
// they are nil when the reference is missing and renderers fall back to "N/A".
type BenefitRequest struct {
	ID           string        `json:"id"                      db:"id"`
	BenefitID    string        `json:"benefit_id"              db:"benefit_id"`
	UserID       string        `json:"user_id"                 db:"user_id"`
	Status       RequestStatus `json:"status"                  db:"status"`
	Note         *string       `json:"note,omitempty"          db:"note"`
	BenefitName  *string       `json:"benefit_name,omitempty"  db:"benefit_name"`
	EmployeeName *string       `json:"employee_name,omitempty" db:"employee_name"`
	CreatedAt    time.Time     `json:"created_at"              db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"              db:"updated_at"`
}

// CreateBenefitRequestRequest represents parameters to file an enrollment request.
type CreateBenefitRequestRequest struct {
	BenefitID string  `json:"benefit_id"`
	UserID    string  `json:"user_id"`
	Note      *string `json:"note,omitempty"`
}

// UpdateBenefitRequestRequest represents parameters to review an enrollment request.
type UpdateBenefitRequestRequest struct {
	Status *RequestStatus `json:"status,omitempty"`
	Note   *string        `json:"note,omitempty"`
}

// Validate validates CreateBenefitRequestRequest.
func (r *CreateBenefitRequestRequest) Validate() error {
	if strings.TrimSpace(r.BenefitID) == "" {
		return errors.New("benefit_id is required and cannot be empty")
	}
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required and cannot be empty")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateBenefitRequestRequest.
func (r *UpdateBenefitRequestRequest) HasUpdates() bool {
	return r.Status != nil || r.Note != nil
}

// Validate validates UpdateBenefitRequestRequest.
func (r *UpdateBenefitRequestRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Status != nil {
		*r.Status = RequestStatus(strings.ToLower(strings.TrimSpace(string(*r.Status))))
		if !r.Status.Valid() {
			return errors.New("status must be one of: pending, approved, denied")
		}
	}
	return nil
}
