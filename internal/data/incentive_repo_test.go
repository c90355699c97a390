package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hr3-suite/hr3-admin/internal/domain/model"
	"github.com/hr3-suite/hr3-admin/internal/testutil"
)

func createTestIncentive(t *testing.T, db *sql.DB, name string) *model.Incentive {
	t.Helper()
	repo := NewIncentiveRepo(db)
	inc, err := repo.Create(context.Background(), model.CreateIncentiveRequest{
		Name:        name,
		RewardType:  model.RewardTypeMonetary,
		RewardValue: testutil.Float64Ptr(1000),
	})
	require.NoError(t, err)
	return inc
}

func TestIncentiveRepo_Create_Get_List_Update_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewIncentiveRepo(db)

		inc, err := repo.Create(ctx, model.CreateIncentiveRequest{
			Name:        "Quarterly Bonus",
			Description: testutil.StringPtr("Paid on quota attainment"),
			RewardType:  model.RewardTypeMonetary,
			RewardValue: testutil.Float64Ptr(1500),
		})
		require.NoError(t, err)
		require.NotEmpty(t, inc.ID)
		assert.Equal(t, model.RewardTypeMonetary, inc.RewardType)
		require.NotNil(t, inc.RewardValue)
		assert.InDelta(t, 1500, *inc.RewardValue, 0.001)

		got, err := repo.GetByID(ctx, inc.ID)
		require.NoError(t, err)
		assert.Equal(t, inc.Name, got.Name)

		lst, err := repo.List(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(lst), 1)

		recognition := model.RewardTypeRecognition
		updated, err := repo.Update(ctx, inc.ID, model.UpdateIncentiveRequest{
			RewardType: &recognition,
		})
		require.NoError(t, err)
		assert.Equal(t, model.RewardTypeRecognition, updated.RewardType)

		deleted, err := repo.Delete(ctx, inc.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, inc.ID)
		assert.ErrorIs(t, err, ErrIncentiveNotFound)
	})
}

func TestIncentiveRepo_MonetaryRequiresValue(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewIncentiveRepo(db)
		_, err := repo.Create(context.Background(), model.CreateIncentiveRequest{
			Name:       "No Value Bonus",
			RewardType: model.RewardTypeMonetary,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reward_value is required")
	})
}

func TestIncentiveTrackingRepo_Lifecycle(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewIncentiveTrackingRepo(db)

		inc := createTestIncentive(t, db, "Referral Reward")
		user := createTestUser(t, db, fmt.Sprintf("track-%d@example.com", time.Now().UnixNano()))

		tr, err := repo.Create(ctx, model.CreateIncentiveTrackingRequest{
			IncentiveID: inc.ID,
			UserID:      user.ID,
			Amount:      testutil.Float64Ptr(250),
		})
		require.NoError(t, err)
		require.NotEmpty(t, tr.ID)
		assert.Equal(t, model.TrackingStatusPending, tr.Status)
		require.NotNil(t, tr.IncentiveName)
		assert.Equal(t, "Referral Reward", *tr.IncentiveName)
		require.NotNil(t, tr.EmployeeName)
		assert.Equal(t, "Test User", *tr.EmployeeName)

		earned := model.TrackingStatusEarned
		earnedAt := time.Now().UTC()
		updated, err := repo.Update(ctx, tr.ID, model.UpdateIncentiveTrackingRequest{
			Status:   &earned,
			EarnedAt: &earnedAt,
		})
		require.NoError(t, err)
		assert.Equal(t, model.TrackingStatusEarned, updated.Status)
		require.NotNil(t, updated.EarnedAt)

		lst, err := repo.List(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(lst), 1)

		deleted, err := repo.Delete(ctx, tr.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, tr.ID)
		assert.ErrorIs(t, err, ErrIncentiveTrackingNotFound)
	})
}

func TestIncentiveTrackingRepo_InvalidReference(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewIncentiveTrackingRepo(db)
		_, err := repo.Create(context.Background(), model.CreateIncentiveTrackingRequest{
			IncentiveID: "00000000-0000-0000-0000-000000000000",
			UserID:      "00000000-0000-0000-0000-000000000000",
		})
		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}
