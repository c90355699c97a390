package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
	"github.com/hr3-suite/hr3-admin/internal/domain/model"
	"github.com/hr3-suite/hr3-admin/internal/testutil"
)

func createTestUser(t *testing.T, db *sql.DB, email string) *model.User {
	t.Helper()
	repo := NewUserRepoWithTimeProvider(db, &RealTimeProvider{})
	u, err := repo.Create(context.Background(), model.CreateUserRequest{
		Email:     email,
		Password:  "test-password",
		FirstName: "Test",
		LastName:  "User",
		Role:      domainauth.RoleEmployee,
		Hr:        domainauth.HrOne,
	})
	require.NoError(t, err)
	return u
}

func TestUserRepo_Create_Get_List_Update_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepoWithTimeProvider(db, &RealTimeProvider{})

		email := fmt.Sprintf("user-%d@example.com", time.Now().UnixNano())
		u, err := repo.Create(ctx, model.CreateUserRequest{
			Email:     email,
			Password:  "correct-horse-battery",
			FirstName: "Jane",
			LastName:  "Doe",
			Role:      domainauth.RoleEmployee,
			Hr:        domainauth.HrTwo,
		})
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		assert.Equal(t, email, u.Email)
		assert.Equal(t, domainauth.RoleEmployee, u.Role)
		assert.Equal(t, domainauth.HrTwo, u.Hr)
		assert.NotZero(t, u.CreatedAt)

		// password is stored hashed, never verbatim
		assert.NotEqual(t, "correct-horse-battery", u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct-horse-battery")))

		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Email, got.Email)

		// email lookup is case-insensitive
		byEmail, err := repo.GetByEmail(ctx, "  "+capitalize(email)+"  ")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)

		lst, err := repo.List(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(lst), 1)

		updated, err := repo.Update(ctx, u.ID, model.UpdateUserRequest{
			FirstName: testutil.StringPtr("Janet"),
			Role:      rolePtr(domainauth.RoleAdmin),
			Hr:        hrPtr(domainauth.HrFour),
		})
		require.NoError(t, err)
		assert.Equal(t, "Janet", updated.FirstName)
		assert.Equal(t, domainauth.RoleAdmin, updated.Role)
		assert.Equal(t, domainauth.HrFour, updated.Hr)

		// password change re-hashes
		updated2, err := repo.Update(ctx, u.ID, model.UpdateUserRequest{
			Password: testutil.StringPtr("brand-new-password"),
		})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated2.PasswordHash), []byte("brand-new-password")))

		deleted, err := repo.Delete(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, u.ID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepoWithTimeProvider(db, &RealTimeProvider{})

		email := fmt.Sprintf("dup-%d@example.com", time.Now().UnixNano())
		createTestUser(t, db, email)

		_, err := repo.Create(ctx, model.CreateUserRequest{
			Email:     email,
			Password:  "another-password",
			FirstName: "Other",
			LastName:  "User",
			Role:      domainauth.RoleEmployee,
			Hr:        domainauth.HrOne,
		})
		assert.ErrorIs(t, err, ErrUserEmailExists)
	})
}

func TestUserRepo_GetByEmailNotFound(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepoWithTimeProvider(db, &RealTimeProvider{})
		_, err := repo.GetByEmail(context.Background(), "missing@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepo_UpdateMissingUser(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepoWithTimeProvider(db, &RealTimeProvider{})
		_, err := repo.Update(context.Background(), "00000000-0000-0000-0000-000000000000", model.UpdateUserRequest{
			FirstName: testutil.StringPtr("Ghost"),
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

func rolePtr(r domainauth.Role) *domainauth.Role { return &r }

func hrPtr(h domainauth.HrTag) *domainauth.HrTag { return &h }
