package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestCreateIncentiveRequest_MonetaryRequiresValue(t *testing.T) {
	req := CreateIncentiveRequest{Name: "Quarterly bonus", RewardType: RewardTypeMonetary}
	assert.ErrorContains(t, req.Validate(), "reward_value is required")

	req.RewardValue = floatPtr(0)
	assert.ErrorContains(t, req.Validate(), "must be > 0")

	req.RewardValue = floatPtr(500)
	assert.NoError(t, req.Validate())
}

func TestCreateIncentiveRequest_CommissionRequiresValue(t *testing.T) {
	req := CreateIncentiveRequest{Name: "Sales push", RewardType: RewardTypeCommission}
	assert.Error(t, req.Validate())

	req.RewardValue = floatPtr(0.05)
	assert.NoError(t, req.Validate())
}

func TestCreateIncentiveRequest_RecognitionNeedsNoValue(t *testing.T) {
	req := CreateIncentiveRequest{Name: "Employee of the month", RewardType: RewardTypeRecognition}
	assert.NoError(t, req.Validate())
}

func TestCreateIncentiveRequest_NormalizesRewardType(t *testing.T) {
	req := CreateIncentiveRequest{Name: "Spot award", RewardType: " Monetary ", RewardValue: floatPtr(100)}
	assert.NoError(t, req.Validate())
	assert.Equal(t, RewardTypeMonetary, req.RewardType)
}

func TestCreateIncentiveRequest_RejectsUnknownRewardType(t *testing.T) {
	req := CreateIncentiveRequest{Name: "Mystery", RewardType: "points"}
	assert.ErrorContains(t, req.Validate(), "must be one of")
}

func TestCreateIncentiveRequest_NameRequired(t *testing.T) {
	req := CreateIncentiveRequest{RewardType: RewardTypePerk}
	assert.ErrorContains(t, req.Validate(), "name is required")
}

func TestUpdateIncentiveRequest_RequiresAtLeastOneField(t *testing.T) {
	req := UpdateIncentiveRequest{}
	assert.ErrorContains(t, req.Validate(), "at least one field")
}

func TestUpdateIncentiveRequest_SwitchToMonetaryRequiresValue(t *testing.T) {
	monetary := RewardTypeMonetary
	req := UpdateIncentiveRequest{RewardType: &monetary}
	assert.ErrorContains(t, req.Validate(), "reward_value is required")

	req.RewardValue = floatPtr(250)
	assert.NoError(t, req.Validate())
}
