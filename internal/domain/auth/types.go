package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleEmployee Role = "Employee"
)

// HrTag identifies which regional HR instance issued a user's account.
// The platform runs a small fixed set of regional instances; the tag is the
// authorization key for instance-scoped routes.
type HrTag string

const (
	HrOne   HrTag = "1"
	HrTwo   HrTag = "2"
	HrThree HrTag = "3"
	HrFour  HrTag = "4"
)

// Identity represents the authenticated principal as produced by an auth
// provider (credential check or IdP exchange). Adapters map provider-specific
// records/claims into this shape. An Identity is never partially populated:
// a check yields either a full Identity or an error.
type Identity struct {
	UserID    string
	Role      Role
	Hr        HrTag
	FirstName string
	LastName  string
	Email     string
	AvatarURL string
	// Groups carries provider-issued group claims on the SSO path; the role
	// mapper derives Role and Hr from them. Credential accounts carry Role
	// and Hr directly and leave Groups empty.
	Groups    []string
	ExpiresAt time.Time
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	Hr        HrTag     `json:"hr"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin returns true if the session role is Admin.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
