package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// User repository sentinels.
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("user email already exists")

	// Benefit repository sentinels.
	ErrBenefitNotFound = errors.New("benefit not found")

	// Benefit request repository sentinels.
	ErrBenefitRequestNotFound = errors.New("benefit request not found")

	// Incentive repository sentinels.
	ErrIncentiveNotFound = errors.New("incentive not found")

	// Incentive tracking repository sentinels.
	ErrIncentiveTrackingNotFound = errors.New("incentive tracking record not found")

	// Compensation plan repository sentinels.
	ErrCompensationPlanNotFound = errors.New("compensation plan not found")

	// ErrInvalidReference is returned when a write references a missing row.
	ErrInvalidReference = errors.New("referenced record does not exist")
)
