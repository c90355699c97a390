//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// BenefitType classifies a benefit plan.
type BenefitType string

const (
	BenefitTypeHealth     BenefitType = "health"
	BenefitTypeInsurance  BenefitType = "insurance"
	BenefitTypeAllowance  BenefitType = "allowance"
	BenefitTypeRetirement BenefitType = "retirement"
)

// Valid reports whether the benefit type is supported.
func (t BenefitType) Valid() bool {
	switch t {
	case BenefitTypeHealth, BenefitTypeInsurance, BenefitTypeAllowance, BenefitTypeRetirement:
		return true
	default:
		return false
	}
}

// normalizeBenefitType trims and lowercases the input.
func normalizeBenefitType(t BenefitType) BenefitType {
	return BenefitType(strings.ToLower(strings.TrimSpace(string(t))))
}

// Benefit represents one enrollable benefit plan.
type Benefit struct {
	ID          string      `json:"id"                    db:"id"`
	Name        string      `json:"name"                  db:"name"`
	Description *string     `json:"description,omitempty" db:"description"`
	Type        BenefitType `json:"type"                  db:"type"`
	Amount      float64     `json:"amount"                db:"amount"`
	CreatedAt   time.Time   `json:"created_at"            db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"            db:"updated_at"`
}

// CreateBenefitRequest represents parameters to create a Benefit.
type CreateBenefitRequest struct {
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Type        BenefitType `json:"type"`
	Amount      float64     `json:"amount"`
}

// UpdateBenefitRequest represents parameters to update a Benefit.
type UpdateBenefitRequest struct {
	Name        *string      `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	Type        *BenefitType `json:"type,omitempty"`
	Amount      *float64     `json:"amount,omitempty"`
}

// Validate validates CreateBenefitRequest.
func (r *CreateBenefitRequest) Validate() error {
	if err := validateRequiredName("name", r.Name); err != nil {
		return err
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLen {
		return errors.New("description cannot exceed 2000 characters")
	}
	r.Type = normalizeBenefitType(r.Type)
	if !r.Type.Valid() {
		return errors.New("type must be one of: health, insurance, allowance, retirement")
	}
	if r.Amount < 0 {
		return errors.New("amount must be non-negative")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateBenefitRequest.
func (r *UpdateBenefitRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil || r.Type != nil || r.Amount != nil
}

// Validate validates UpdateBenefitRequest.
func (r *UpdateBenefitRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		if err := validateRequiredName("name", *r.Name); err != nil {
			return err
		}
	}
	if r.Type != nil {
		*r.Type = normalizeBenefitType(*r.Type)
		if !r.Type.Valid() {
			return errors.New("type must be one of: health, insurance, allowance, retirement")
		}
	}
	if r.Amount != nil && *r.Amount < 0 {
		return errors.New("amount must be non-negative")
	}
	return nil
}
