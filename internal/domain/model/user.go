//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
)

const (
	maxNameLen        = 255
	minPasswordLen    = 8
	maxEmailLen       = 320
	maxDescriptionLen = 2000
)

func validateRequiredName(field, name string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return errors.New(field + " is required and cannot be empty")
	}
	if utf8.RuneCountInString(n) > maxNameLen {
		return errors.New(field + " cannot exceed 255 characters")
	}
	return nil
}

func validRole(r domainauth.Role) bool {
	return r == domainauth.RoleAdmin || r == domainauth.RoleEmployee
}

func validHrTag(h domainauth.HrTag) bool {
	switch h {
	case domainauth.HrOne, domainauth.HrTwo, domainauth.HrThree, domainauth.HrFour:
		return true
	default:
		return false
	}
}

// User is an account on one regional HR instance. PasswordHash is a bcrypt
// hash and never serialized.
type User struct {
	ID           string           `json:"id"                   db:"id"`
	Email        string           `json:"email"                db:"email"`
	PasswordHash string           `json:"-"                    db:"password_hash"`
	FirstName    string           `json:"first_name"           db:"first_name"`
	LastName     string           `json:"last_name"            db:"last_name"`
	Role         domainauth.Role  `json:"role"                 db:"role"`
	Hr           domainauth.HrTag `json:"hr"                  db:"hr"`
	AvatarURL    *string          `json:"avatar_url,omitempty" db:"avatar_url"`
	CreatedAt    time.Time        `json:"created_at"           db:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"           db:"updated_at"`
}

// CreateUserRequest represents parameters to create a User.
// Password is hashed by the repository before storage.
type CreateUserRequest struct {
	Email     string           `json:"email"`
	Password  string           `json:"password"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Role      domainauth.Role  `json:"role"`
	Hr        domainauth.HrTag `json:"hr"`
	AvatarURL *string          `json:"avatar_url,omitempty"`
}

// UpdateUserRequest represents parameters to update a User.
type UpdateUserRequest struct {
	Email     *string           `json:"email,omitempty"`
	Password  *string           `json:"password,omitempty"`
	FirstName *string           `json:"first_name,omitempty"`
	LastName  *string           `json:"last_name,omitempty"`
	Role      *domainauth.Role  `json:"role,omitempty"`
	Hr        *domainauth.HrTag `json:"hr,omitempty"`
	AvatarURL *string           `json:"avatar_url,omitempty"`
}

// Validate validates CreateUserRequest.
func (r *CreateUserRequest) Validate() error {
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return errors.New("email is required and cannot be empty")
	}
	if utf8.RuneCountInString(email) > maxEmailLen || !strings.Contains(email, "@") {
		return errors.New("email must be a valid address")
	}
	if utf8.RuneCountInString(r.Password) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	if !validRole(r.Role) {
		return errors.New("role must be one of: Admin, Employee")
	}
	if !validHrTag(r.Hr) {
		return errors.New("hr must be one of: 1, 2, 3, 4")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateUserRequest.
func (r *UpdateUserRequest) HasUpdates() bool {
	return r.Email != nil || r.Password != nil || r.FirstName != nil ||
		r.LastName != nil || r.Role != nil || r.Hr != nil || r.AvatarURL != nil
}

// Validate validates UpdateUserRequest.
func (r *UpdateUserRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Email != nil {
		email := strings.TrimSpace(*r.Email)
		if email == "" || utf8.RuneCountInString(email) > maxEmailLen || !strings.Contains(email, "@") {
			return errors.New("email must be a valid address")
		}
	}
	if r.Password != nil && utf8.RuneCountInString(*r.Password) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	if r.Role != nil && !validRole(*r.Role) {
		return errors.New("role must be one of: Admin, Employee")
	}
	if r.Hr != nil && !validHrTag(*r.Hr) {
		return errors.New("hr must be one of: 1, 2, 3, 4")
	}
	return nil
}

// DisplayName joins first and last name, falling back to the email local part.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return u.Email
}
