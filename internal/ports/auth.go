package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
)

// CredentialVerifier checks an email/password pair and returns the identity
// it proves. Implementations must not distinguish "unknown account" from
// "wrong password" in their error values.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (domainauth.Identity, error)
}

// BeginInput carries inputs for initiating an SSO auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// AuthProvider initiates and completes an authentication flow against an IdP.
// Used for the SSO login path; the credential path goes through
// CredentialVerifier instead.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleMapper maps provider-issued groups to an application role and regional
// HR instance tag. Only the SSO path needs mapping; credential accounts carry
// role and tag on the user record.
type RoleMapper interface {
	Map(groups []string) (domainauth.Role, domainauth.HrTag)
}
