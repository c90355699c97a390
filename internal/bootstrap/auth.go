package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/hr3-suite/hr3-admin/config"
	"github.com/hr3-suite/hr3-admin/internal/adapters/authroles"
	"github.com/hr3-suite/hr3-admin/internal/adapters/credauth"
	"github.com/hr3-suite/hr3-admin/internal/adapters/devauth"
	"github.com/hr3-suite/hr3-admin/internal/adapters/oidc"
	redisadapter "github.com/hr3-suite/hr3-admin/internal/adapters/redis"
	"github.com/hr3-suite/hr3-admin/internal/data"
	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
	"github.com/hr3-suite/hr3-admin/internal/ports"
	"github.com/hr3-suite/hr3-admin/internal/service"
)

// AuthDeps contains dependencies for building the auth service.
type AuthDeps struct {
	Auth        config.AuthConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates the auth service for the configured auth mode.
func BuildAuthService(deps AuthDeps) (*service.AuthService, error) {
	if deps.RedisClient == nil {
		return nil, fmt.Errorf("auth mode %q requires a redis client for sessions", deps.Auth.Mode)
	}
	sessionStore := redisadapter.NewSessionStore(deps.RedisClient)

	switch deps.Auth.Mode {
	case config.AuthModeCredentials:
		return buildCredentialAuthService(deps, sessionStore)
	case config.AuthModeOAuth:
		return buildOAuthService(deps, sessionStore)
	case config.AuthModeMock:
		return buildDevAuthService(deps, sessionStore)
	default:
		return nil, fmt.Errorf("unsupported auth mode %q", deps.Auth.Mode)
	}
}

func buildCredentialAuthService(deps AuthDeps, sessions ports.SessionStore) (*service.AuthService, error) {
	if deps.DB == nil {
		return nil, fmt.Errorf("auth mode %q requires a database connection", deps.Auth.Mode)
	}

	verifier, err := credauth.NewVerifier(credauth.Options{
		Users:           data.NewUserRepo(deps.DB),
		SessionDuration: deps.Auth.SessionDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("build credential verifier: %w", err)
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Credentials: verifier,
		Sessions:    sessions,
	})
}

func buildOAuthService(deps AuthDeps, sessions ports.SessionStore) (*service.AuthService, error) {
	oauth := deps.Auth.OAuth
	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
		LogoutURL:    oauth.LogoutURL,
	})
	if err != nil {
		return nil, fmt.Errorf("build OIDC provider: %w", err)
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Sessions: sessions,
		SSO: service.SSOOptions{
			Provider: prov,
			Roles:    buildRoleMapper(deps.Auth),
		},
	})
}

func buildDevAuthService(deps AuthDeps, sessions ports.SessionStore) (*service.AuthService, error) {
	prov, err := devauth.NewProvider(devauth.Config{
		UserID: deps.Auth.DevAuth.UserID,
		Email:  deps.Auth.DevAuth.Email,
		Groups: deps.Auth.DevAuth.Groups,
		// session duration defaults inside provider
	})
	if err != nil {
		return nil, fmt.Errorf("build dev auth provider: %w", err)
	}

	if deps.Logger != nil {
		deps.Logger.Warn("mock auth enabled; do not use in production",
			"user_id", deps.Auth.DevAuth.UserID)
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Sessions: sessions,
		SSO: service.SSOOptions{
			Provider: prov,
			Roles:    buildRoleMapper(deps.Auth),
		},
	})
}

func buildRoleMapper(cfg config.AuthConfig) authroles.StaticRoleMapper {
	hrGroups := make(map[string]domainauth.HrTag, len(cfg.HrGroups))
	for group, tag := range cfg.HrGroups {
		hrGroups[group] = domainauth.HrTag(tag)
	}
	return authroles.StaticRoleMapper{
		AdminGroup: cfg.AdminGroup,
		HrGroups:   hrGroups,
		DefaultHr:  domainauth.HrTag(cfg.DefaultHr),
	}
}
