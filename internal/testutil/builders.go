package testutil

import (
	"fmt"
	"time"

	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
	"github.com/hr3-suite/hr3-admin/internal/domain/model"
)

// UserRequestBuilder provides a fluent interface for building CreateUserRequest objects for testing.
type UserRequestBuilder struct {
	req *model.CreateUserRequest
}

// NewUserRequest creates a new UserRequestBuilder with sensible defaults.
func NewUserRequest() *UserRequestBuilder {
	return &UserRequestBuilder{
		req: &model.CreateUserRequest{
			Email:     "jane.doe@example.com",
			Password:  "correct-horse-battery",
			FirstName: "Jane",
			LastName:  "Doe",
			Role:      domainauth.RoleEmployee,
			Hr:        domainauth.HrOne,
		},
	}
}

// WithEmail sets the account email.
func (b *UserRequestBuilder) WithEmail(email string) *UserRequestBuilder {
	b.req.Email = email
	return b
}

// WithPassword sets the plaintext password to be hashed by the repository.
func (b *UserRequestBuilder) WithPassword(password string) *UserRequestBuilder {
	b.req.Password = password
	return b
}

// WithName sets first and last name.
func (b *UserRequestBuilder) WithName(first, last string) *UserRequestBuilder {
	b.req.FirstName = first
	b.req.LastName = last
	return b
}

// WithRole sets the account role.
func (b *UserRequestBuilder) WithRole(role domainauth.Role) *UserRequestBuilder {
	b.req.Role = role
	return b
}

// WithHr sets the HR instance tag.
func (b *UserRequestBuilder) WithHr(hr domainauth.HrTag) *UserRequestBuilder {
	b.req.Hr = hr
	return b
}

// Build returns the constructed CreateUserRequest.
func (b *UserRequestBuilder) Build() *model.CreateUserRequest {
	return b.req
}

// AdminUserRequest creates an admin account request.
func AdminUserRequest() *model.CreateUserRequest {
	return NewUserRequest().
		WithEmail("admin@example.com").
		WithName("Ada", "Admin").
		WithRole(domainauth.RoleAdmin).
		Build()
}

// EmployeeUserRequest creates an employee account request on the given HR instance.
func EmployeeUserRequest(hr domainauth.HrTag) *model.CreateUserRequest {
	return NewUserRequest().
		WithEmail(fmt.Sprintf("employee-%s@example.com", hr)).
		WithHr(hr).
		Build()
}

// BenefitRequestFixture creates a valid benefit create request.
func BenefitRequestFixture() *model.CreateBenefitRequest {
	return &model.CreateBenefitRequest{
		Name:        "Dental Plan",
		Description: StringPtr("Covers routine dental care"),
		Type:        model.BenefitTypeHealth,
	}
}

// IncentiveRequestFixture creates a valid monetary incentive create request.
func IncentiveRequestFixture() *model.CreateIncentiveRequest {
	return &model.CreateIncentiveRequest{
		Name:        "Quarterly Bonus",
		Description: StringPtr("Paid on quota attainment"),
		RewardType:  model.RewardTypeMonetary,
		RewardValue: Float64Ptr(1500),
	}
}

// CompensationPlanFixture creates a valid compensation plan create request.
func CompensationPlanFixture() *model.CreateCompensationPlanRequest {
	return &model.CreateCompensationPlanRequest{
		Name:          "Senior Engineer",
		Grade:         "G7",
		BaseSalary:    96000,
		Allowance:     4800,
		EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
