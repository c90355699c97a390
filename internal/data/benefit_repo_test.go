package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hr3-suite/hr3-admin/internal/domain/model"
	"github.com/hr3-suite/hr3-admin/internal/testutil"
)

func createTestBenefit(t *testing.T, db *sql.DB, name string) *model.Benefit {
	t.Helper()
	repo := NewBenefitRepo(db)
	b, err := repo.Create(context.Background(), model.CreateBenefitRequest{
		Name: name,
		Type: model.BenefitTypeHealth,
	})
	require.NoError(t, err)
	return b
}

func TestBenefitRepo_Create_Get_List_Update_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewBenefitRepo(db)

		b, err := repo.Create(ctx, model.CreateBenefitRequest{
			Name:        "Dental Plan",
			Description: testutil.StringPtr("Covers routine dental care"),
			Type:        model.BenefitTypeHealth,
		})
		require.NoError(t, err)
		require.NotEmpty(t, b.ID)
		assert.Equal(t, "Dental Plan", b.Name)
		assert.Equal(t, model.BenefitTypeHealth, b.Type)
		assert.NotZero(t, b.CreatedAt)

		got, err := repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.Name, got.Name)

		lst, err := repo.List(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(lst), 1)

		newType := model.BenefitTypeInsurance
		updated, err := repo.Update(ctx, b.ID, model.UpdateBenefitRequest{
			Name: testutil.StringPtr("Dental Plus"),
			Type: &newType,
		})
		require.NoError(t, err)
		assert.Equal(t, "Dental Plus", updated.Name)
		assert.Equal(t, model.BenefitTypeInsurance, updated.Type)

		deleted, err := repo.Delete(ctx, b.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, b.ID)
		assert.ErrorIs(t, err, ErrBenefitNotFound)
	})
}

func TestBenefitRepo_CreateValidation(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewBenefitRepo(db)
		_, err := repo.Create(context.Background(), model.CreateBenefitRequest{
			Name: "",
			Type: model.BenefitTypeHealth,
		})
		require.Error(t, err)
	})
}

func TestBenefitRepo_DeleteMissing(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewBenefitRepo(db)
		deleted, err := repo.Delete(context.Background(), "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestBenefitRepo_ListNewestFirst(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		tp := NewFixedTimeProvider(testutil.TestTime())
		repo := NewBenefitRepoWithTimeProvider(db, tp)

		first, err := repo.Create(ctx, model.CreateBenefitRequest{Name: "Older", Type: model.BenefitTypeHealth})
		require.NoError(t, err)

		tp.AddTime(time.Minute)
		second, err := repo.Create(ctx, model.CreateBenefitRequest{Name: "Newer", Type: model.BenefitTypeHealth})
		require.NoError(t, err)

		lst, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, lst, 2)
		assert.Equal(t, second.ID, lst[0].ID)
		assert.Equal(t, first.ID, lst[1].ID)
	})
}
