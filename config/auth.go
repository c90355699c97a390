package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeCredentials uses email/password accounts from the users table.
	AuthModeCredentials AuthMode = "credentials"
	// AuthModeOAuth uses OAuth/OIDC for authentication.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "credentials", "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: credentials, oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"hr3-admin"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:""`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID string   `env:"USER_ID" envDefault:"dev-user"`
	Email  string   `env:"EMAIL"   envDefault:"dev@example.com"`
	Groups []string `env:"GROUPS"  envDefault:"hr3-admins"      envSeparator:";"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"credentials"`

	// SessionDuration bounds credential sessions; SSO sessions follow the
	// provider token expiry.
	SessionDuration time.Duration `env:"AUTH_SESSION_DURATION" envDefault:"8h"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// AdminGroup is the provider group granting the Admin role on the SSO path.
	AdminGroup string `env:"AUTH_ADMIN_GROUP" envDefault:"hr3-admins"`

	// HrGroups maps provider groups to regional HR instance tags,
	// e.g. "hr3-emea=1;hr3-amer=2".
	HrGroups map[string]string `env:"AUTH_HR_GROUPS" envSeparator:";" envKeyValSeparator:"="`

	// DefaultHr is the instance tag assigned when no group matches.
	DefaultHr string `env:"AUTH_DEFAULT_HR" envDefault:"1"`

	// AllowedHr lists the regional HR instance tags this deployment serves.
	// Member routes admit sessions from these instances only.
	AllowedHr []string `env:"AUTH_ALLOWED_HR" envSeparator:"," envDefault:"1,2,3,4"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	const minSessionDuration = time.Minute
	if a.SessionDuration < minSessionDuration {
		a.SessionDuration = minSessionDuration
	}
	if a.DefaultHr == "" {
		a.DefaultHr = "1"
	}
	tags := make([]string, 0, len(a.AllowedHr))
	for _, tag := range a.AllowedHr {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	// An empty allow-list would lock every member route; serve all instances.
	if len(tags) == 0 {
		tags = []string{"1", "2", "3", "4"}
	}
	a.AllowedHr = tags
}

// Validate rejects auth configurations the selected mode cannot run with.
func (a *AuthConfig) Validate() error {
	if a.Mode != AuthModeOAuth {
		return nil
	}
	if a.OAuth.DiscoveryURL == "" {
		return errors.New("OAUTH_DISCOVERY_URL is required when AUTH_MODE=oauth")
	}
	if a.AdminGroup == "" {
		return errors.New("AUTH_ADMIN_GROUP is required when AUTH_MODE=oauth")
	}
	return nil
}
