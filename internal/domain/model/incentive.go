//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// RewardType classifies how an incentive pays out.
type RewardType string

const (
	RewardTypeMonetary    RewardType = "monetary"
	RewardTypeCommission  RewardType = "commission"
	RewardTypeRecognition RewardType = "recognition"
	RewardTypePerk        RewardType = "perk"
)

// Valid reports whether the reward type is supported.
func (t RewardType) Valid() bool {
	switch t {
	case RewardTypeMonetary, RewardTypeCommission, RewardTypeRecognition, RewardTypePerk:
		return true
	default:
		return false
	}
}

// RequiresValue reports whether the reward type pays out an amount and
// therefore requires a reward value.
func (t RewardType) RequiresValue() bool {
	return t == RewardTypeMonetary || t == RewardTypeCommission
}

// Incentive represents one incentive program definition.
type Incentive struct {
	ID          string     `json:"id"                     db:"id"`
	Name        string     `json:"name"                   db:"name"`
	Description *string    `json:"description,omitempty"  db:"description"`
	RewardType  RewardType `json:"reward_type"            db:"reward_type"`
	RewardValue *float64   `json:"reward_value,omitempty" db:"reward_value"`
	CreatedAt   time.Time  `json:"created_at"             db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"             db:"updated_at"`
}

// CreateIncentiveRequest represents parameters to create an Incentive.
type CreateIncentiveRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	RewardType  RewardType `json:"reward_type"`
	RewardValue *float64   `json:"reward_value,omitempty"`
}

// UpdateIncentiveRequest represents parameters to update an Incentive.
type UpdateIncentiveRequest struct {
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	RewardType  *RewardType `json:"reward_type,omitempty"`
	RewardValue *float64    `json:"reward_value,omitempty"`
}

func validateRewardValue(t RewardType, value *float64) error {
	if t.RequiresValue() {
		if value == nil {
			return errors.New("reward_value is required for monetary and commission reward types")
		}
		if *value <= 0 {
			return errors.New("reward_value must be > 0")
		}
		return nil
	}
	if value != nil && *value < 0 {
		return errors.New("reward_value must be non-negative")
	}
	return nil
}

// Validate validates CreateIncentiveRequest. The reward value rule blocks
// submission before any storage call: paying reward types must carry a value.
func (r *CreateIncentiveRequest) Validate() error {
	if err := validateRequiredName("name", r.Name); err != nil {
		return err
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLen {
		return errors.New("description cannot exceed 2000 characters")
	}
	r.RewardType = RewardType(strings.ToLower(strings.TrimSpace(string(r.RewardType))))
	if !r.RewardType.Valid() {
		return errors.New("reward_type must be one of: monetary, commission, recognition, perk")
	}
	return validateRewardValue(r.RewardType, r.RewardValue)
}

// HasUpdates reports whether any field is set in UpdateIncentiveRequest.
func (r *UpdateIncentiveRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil || r.RewardType != nil || r.RewardValue != nil
}

// Validate validates UpdateIncentiveRequest.
func (r *UpdateIncentiveRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		if err := validateRequiredName("name", *r.Name); err != nil {
			return err
		}
	}
	if r.RewardType != nil {
		*r.RewardType = RewardType(strings.ToLower(strings.TrimSpace(string(*r.RewardType))))
		if !r.RewardType.Valid() {
			return errors.New("reward_type must be one of: monetary, commission, recognition, perk")
		}
		return validateRewardValue(*r.RewardType, r.RewardValue)
	}
	if r.RewardValue != nil && *r.RewardValue < 0 {
		return errors.New("reward_value must be non-negative")
	}
	return nil
}
