// Package credauth verifies email/password credentials against stored
// account records. This is the primary login path; SSO goes through the
// oidc adapter instead.
package credauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hr3-suite/hr3-admin/internal/core"
	"github.com/hr3-suite/hr3-admin/internal/data"
	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
)

// ErrInvalidCredentials is returned for any failed verification. Unknown
// accounts and wrong passwords produce the same error so responses cannot
// be used to probe which emails exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

const defaultSessionDuration = 8 * time.Hour

// Options configures a Verifier.
type Options struct {
	Users           core.UserRepository
	SessionDuration time.Duration // default 8h when zero
	Now             func() time.Time
}

// Verifier implements ports.CredentialVerifier over the user repository.
type Verifier struct {
	users           core.UserRepository
	sessionDuration time.Duration
	now             func() time.Time
}

// NewVerifier constructs a Verifier from Options.
func NewVerifier(opts Options) (*Verifier, error) {
	if opts.Users == nil {
		return nil, errors.New("credauth: Users repository is required")
	}
	dur := opts.SessionDuration
	if dur == 0 {
		dur = defaultSessionDuration
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Verifier{
		users:           opts.Users,
		sessionDuration: dur,
		now:             now,
	}, nil
}

// MustNewVerifier constructs a Verifier and panics on invalid options.
func MustNewVerifier(opts Options) *Verifier {
	v, err := NewVerifier(opts)
	if err != nil {
		panic(err)
	}
	return v
}

// Verify checks the email/password pair and returns the proven identity.
func (v *Verifier) Verify(ctx context.Context, email, password string) (domainauth.Identity, error) {
	user, err := v.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			// Burn a bcrypt comparison anyway so unknown accounts take the
			// same time as wrong passwords.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return domainauth.Identity{}, ErrInvalidCredentials
		}
		return domainauth.Identity{}, fmt.Errorf("lookup user: %w", err)
	}

	if compareErr := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); compareErr != nil {
		return domainauth.Identity{}, ErrInvalidCredentials
	}

	identity := domainauth.Identity{
		UserID:    user.ID,
		Role:      user.Role,
		Hr:        user.Hr,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		ExpiresAt: v.now().Add(v.sessionDuration),
	}
	if user.AvatarURL != nil {
		identity.AvatarURL = *user.AvatarURL
	}
	return identity, nil
}

// dummyHash is a valid bcrypt hash of an unused random value.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
