//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// CompensationPlan defines the pay structure for one salary grade.
type CompensationPlan struct {
	ID            string    `json:"id"             db:"id"`
	Name          string    `json:"name"           db:"name"`
	Grade         string    `json:"grade"          db:"grade"`
	BaseSalary    float64   `json:"base_salary"    db:"base_salary"`
	Allowance     float64   `json:"allowance"      db:"allowance"`
	EffectiveDate time.Time `json:"effective_date" db:"effective_date"`
	CreatedAt     time.Time `json:"created_at"     db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"     db:"updated_at"`
}

// CreateCompensationPlanRequest represents parameters to create a plan.
type CreateCompensationPlanRequest struct {
	Name          string    `json:"name"`
	Grade         string    `json:"grade"`
	BaseSalary    float64   `json:"base_salary"`
	Allowance     float64   `json:"allowance"`
	EffectiveDate time.Time `json:"effective_date"`
}

// UpdateCompensationPlanRequest represents parameters to update a plan.
type UpdateCompensationPlanRequest struct {
	Name          *string    `json:"name,omitempty"`
	Grade         *string    `json:"grade,omitempty"`
	BaseSalary    *float64   `json:"base_salary,omitempty"`
	Allowance     *float64   `json:"allowance,omitempty"`
	EffectiveDate *time.Time `json:"effective_date,omitempty"`
}

// Validate validates CreateCompensationPlanRequest.
func (r *CreateCompensationPlanRequest) Validate() error {
	if err := validateRequiredName("name", r.Name); err != nil {
		return err
	}
	if strings.TrimSpace(r.Grade) == "" {
		return errors.New("grade is required and cannot be empty")
	}
	if r.BaseSalary < 0 {
		return errors.New("base_salary must be non-negative")
	}
	if r.Allowance < 0 {
		return errors.New("allowance must be non-negative")
	}
	if r.EffectiveDate.IsZero() {
		return errors.New("effective_date is required")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateCompensationPlanRequest.
func (r *UpdateCompensationPlanRequest) HasUpdates() bool {
	return r.Name != nil || r.Grade != nil || r.BaseSalary != nil ||
		r.Allowance != nil || r.EffectiveDate != nil
}

// Validate validates UpdateCompensationPlanRequest.
func (r *UpdateCompensationPlanRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		if err := validateRequiredName("name", *r.Name); err != nil {
			return err
		}
	}
	if r.Grade != nil && strings.TrimSpace(*r.Grade) == "" {
		return errors.New("grade cannot be empty")
	}
	if r.BaseSalary != nil && *r.BaseSalary < 0 {
		return errors.New("base_salary must be non-negative")
	}
	if r.Allowance != nil && *r.Allowance < 0 {
		return errors.New("allowance must be non-negative")
	}
	return nil
}
