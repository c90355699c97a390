package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hr3-suite/hr3-admin/config"
	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
	"github.com/hr3-suite/hr3-admin/internal/service"
	"github.com/hr3-suite/hr3-admin/internal/testutil"
)

func TestBuildAuthService_RequiresRedis(t *testing.T) {
	_, err := BuildAuthService(AuthDeps{Auth: config.AuthConfig{Mode: config.AuthModeMock}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis client")
}

func TestBuildAuthService_UnknownMode(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	_, err := BuildAuthService(AuthDeps{
		Auth:        config.AuthConfig{Mode: "saml"},
		RedisClient: client,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported auth mode")
}

func TestBuildAuthService_CredentialsRequiresDB(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	_, err := BuildAuthService(AuthDeps{
		Auth:        config.AuthConfig{Mode: config.AuthModeCredentials},
		RedisClient: client,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database connection")
}

func TestBuildAuthService_MockModeFullFlow(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	svc, err := BuildAuthService(AuthDeps{
		Auth: config.AuthConfig{
			Mode: config.AuthModeMock,
			DevAuth: config.DevAuthConfig{
				UserID: "dev-user",
				Email:  "dev@example.com",
				Groups: []string{"hr3-admins"},
			},
			AdminGroup: "hr3-admins",
			DefaultHr:  "1",
		},
		RedisClient: client,
	})
	require.NoError(t, err)

	ctx := context.Background()
	begin, err := svc.BeginSSOLogin(ctx, "http://localhost:8080/auth/callback")
	require.NoError(t, err)

	session, err := svc.CompleteSSOLogin(ctx, service.CompleteSSOLoginInput{
		Code:  "dev",
		State: begin.State,
		Nonce: begin.Nonce,
	})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, session.Role)
	assert.Equal(t, domainauth.HrOne, session.Hr)

	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "dev-user", got.UserID)
}
