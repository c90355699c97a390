//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxPathLen = 2048

// PageVisit is one behavioural-analytics beacon: which screen a user was on
// and for how long. Beacons are best-effort; UserID is nil when the session
// could not be attributed.
type PageVisit struct {
	ID         string    `json:"id"                db:"id"`
	UserID     *string   `json:"user_id,omitempty" db:"user_id"`
	Path       string    `json:"path"              db:"path"`
	DurationMS int64     `json:"duration_ms"       db:"duration_ms"`
	VisitedAt  time.Time `json:"visited_at"        db:"visited_at"`
}

// RecordPageVisitRequest represents one beacon payload sent on navigation
// teardown.
type RecordPageVisitRequest struct {
	Path       string  `json:"path"`
	DurationMS int64   `json:"duration_ms"`
	UserID     *string `json:"user_id,omitempty"`
}

// Validate validates RecordPageVisitRequest.
func (r *RecordPageVisitRequest) Validate() error {
	path := strings.TrimSpace(r.Path)
	if path == "" {
		return errors.New("path is required and cannot be empty")
	}
	if !strings.HasPrefix(path, "/") {
		return errors.New("path must start with /")
	}
	if utf8.RuneCountInString(path) > maxPathLen {
		return errors.New("path cannot exceed 2048 characters")
	}
	if r.DurationMS < 0 {
		return errors.New("duration_ms must be non-negative")
	}
	return nil
}
