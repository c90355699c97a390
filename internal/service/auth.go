// Package service contains orchestration logic between HTTP handlers and
// the storage/auth adapters.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
	"github.com/hr3-suite/hr3-admin/internal/ports"
)

// SSOOptions groups the provider-side dependencies for the SSO login path.
type SSOOptions struct {
	Provider ports.AuthProvider
	Roles    ports.RoleMapper
}

// AuthServiceOptions groups dependencies for AuthService. Credentials and SSO
// are each optional, but at least one login path must be configured.
type AuthServiceOptions struct {
	Credentials ports.CredentialVerifier
	SSO         SSOOptions
	Sessions    ports.SessionStore
}

// AuthService orchestrates login flows and session lifecycle.
type AuthService struct {
	credentials ports.CredentialVerifier
	sso         SSOOptions
	sessions    ports.SessionStore
}

// ErrSessionExpired is returned when a session exists but is past its expiry.
var ErrSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) (*AuthService, error) {
	if opts.Sessions == nil {
		return nil, errors.New("auth service: Sessions store is required")
	}
	if opts.Credentials == nil && opts.SSO.Provider == nil {
		return nil, errors.New("auth service: at least one of Credentials or SSO.Provider is required")
	}
	if opts.SSO.Provider != nil && opts.SSO.Roles == nil {
		return nil, errors.New("auth service: SSO.Roles mapper is required with SSO.Provider")
	}
	return &AuthService{
		credentials: opts.Credentials,
		sso:         opts.SSO,
		sessions:    opts.Sessions,
	}, nil
}

// MustNewAuthService constructs an AuthService and panics on invalid options.
func MustNewAuthService(opts AuthServiceOptions) *AuthService {
	s, err := NewAuthService(opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Login verifies an email/password pair and establishes a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	if s.credentials == nil {
		return nil, errors.New("credential login is not configured")
	}
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	identity, err := s.credentials.Verify(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, identity)
}

// BeginSSOLoginResult contains the result of beginning an SSO login flow.
type BeginSSOLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginSSOLogin initiates an SSO flow and returns the provider auth URL with state and nonce.
func (s *AuthService) BeginSSOLogin(ctx context.Context, redirectURL string) (*BeginSSOLoginResult, error) {
	if s.sso.Provider == nil {
		return nil, errors.New("SSO login is not configured")
	}
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.sso.Provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginSSOLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteSSOLoginInput groups parameters for completing an SSO login flow.
type CompleteSSOLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteSSOLogin exchanges the authorization code for an identity, maps
// provider groups to a role and HR instance, and persists a session.
func (s *AuthService) CompleteSSOLogin(ctx context.Context, input CompleteSSOLoginInput) (*domainauth.Session, error) {
	if s.sso.Provider == nil {
		return nil, errors.New("SSO login is not configured")
	}
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	identity, err := s.sso.Provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	identity.Role, identity.Hr = s.sso.Roles.Map(identity.Groups)

	return s.establishSession(ctx, identity)
}

// establishSession mints a session ID and persists the session.
func (s *AuthService) establishSession(ctx context.Context, identity domainauth.Identity) (*domainauth.Session, error) {
	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    identity.UserID,
		Role:      identity.Role,
		Hr:        identity.Hr,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Email:     identity.Email,
		AvatarURL: identity.AvatarURL,
		ExpiresAt: identity.ExpiresAt,
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &session, nil
}

// GetSession retrieves a session by ID, deleting and rejecting expired ones.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(ErrSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Logout removes a session. A missing or empty session ID is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// UUID is URL-safe and has good entropy
	return uuid.New().String()
}
