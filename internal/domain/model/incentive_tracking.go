//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// TrackingStatus follows an incentive award through payout.
type TrackingStatus string

const (
	TrackingStatusPending TrackingStatus = "pending"
	TrackingStatusEarned  TrackingStatus = "earned"
	TrackingStatusPaid    TrackingStatus = "paid"
)

// Valid reports whether the tracking status is supported.
func (s TrackingStatus) Valid() bool {
	switch s {
	case TrackingStatusPending, TrackingStatusEarned, TrackingStatusPaid:
		return true
	default:
		return false
	}
}

// IncentiveTracking records one employee's progress against an incentive.
// IncentiveName and EmployeeName are joined projections; nil when the
// referenced row is gone and renderers fall back to "N/A".
type IncentiveTracking struct {
	ID            string         `json:"id"                       db:"id"`
	IncentiveID   string         `json:"incentive_id"             db:"incentive_id"`
	UserID        string         `json:"user_id"                  db:"user_id"`
	Status        TrackingStatus `json:"status"                   db:"status"`
	Amount        *float64       `json:"amount,omitempty"         db:"amount"`
	EarnedAt      *time.Time     `json:"earned_at,omitempty"      db:"earned_at"`
	IncentiveName *string        `json:"incentive_name,omitempty" db:"incentive_name"`
	EmployeeName  *string        `json:"employee_name,omitempty"  db:"employee_name"`
	CreatedAt     time.Time      `json:"created_at"               db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"               db:"updated_at"`
}

// CreateIncentiveTrackingRequest represents parameters to start tracking.
type CreateIncentiveTrackingRequest struct {
	IncentiveID string   `json:"incentive_id"`
	UserID      string   `json:"user_id"`
	Amount      *float64 `json:"amount,omitempty"`
}

// UpdateIncentiveTrackingRequest represents parameters to update tracking.
type UpdateIncentiveTrackingRequest struct {
	Status   *TrackingStatus `json:"status,omitempty"`
	Amount   *float64        `json:"amount,omitempty"`
	EarnedAt *time.Time      `json:"earned_at,omitempty"`
}

// Validate validates CreateIncentiveTrackingRequest.
func (r *CreateIncentiveTrackingRequest) Validate() error {
	if strings.TrimSpace(r.IncentiveID) == "" {
		return errors.New("incentive_id is required and cannot be empty")
	}
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required and cannot be empty")
	}
	if r.Amount != nil && *r.Amount < 0 {
		return errors.New("amount must be non-negative")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateIncentiveTrackingRequest.
func (r *UpdateIncentiveTrackingRequest) HasUpdates() bool {
	return r.Status != nil || r.Amount != nil || r.EarnedAt != nil
}

// Validate validates UpdateIncentiveTrackingRequest.
func (r *UpdateIncentiveTrackingRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Status != nil {
		*r.Status = TrackingStatus(strings.ToLower(strings.TrimSpace(string(*r.Status))))
		if !r.Status.Valid() {
			return errors.New("status must be one of: pending, earned, paid")
		}
	}
	if r.Amount != nil && *r.Amount < 0 {
		return errors.New("amount must be non-negative")
	}
	return nil
}
