// Package core defines the repository contracts the service layer depends on.
// Concrete implementations live in internal/data.
package core

import (
	"context"

	"github.com/hr3-suite/hr3-admin/internal/domain/model"
)

// CRUDRepository is the storage contract every management resource shares:
// create, fetch one, fetch the full ordered collection, update by id, delete
// by id. List returns the complete collection — pagination is a presentation
// concern handled client-side over the full result.
type CRUDRepository[T any, C any, U any] interface {
	Create(ctx context.Context, req C) (*T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id string, req U) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Per-entity aliases keep service wiring and mock generation readable.
type (
	BenefitRepository           = CRUDRepository[model.Benefit, model.CreateBenefitRequest, model.UpdateBenefitRequest]
	BenefitRequestRepository    = CRUDRepository[model.BenefitRequest, model.CreateBenefitRequestRequest, model.UpdateBenefitRequestRequest]
	IncentiveRepository         = CRUDRepository[model.Incentive, model.CreateIncentiveRequest, model.UpdateIncentiveRequest]
	IncentiveTrackingRepository = CRUDRepository[model.IncentiveTracking, model.CreateIncentiveTrackingRequest, model.UpdateIncentiveTrackingRequest]
	CompensationPlanRepository  = CRUDRepository[model.CompensationPlan, model.CreateCompensationPlanRequest, model.UpdateCompensationPlanRequest]
)

// UserRepository adds the email lookup the credential login path needs.
type UserRepository interface {
	CRUDRepository[model.User, model.CreateUserRequest, model.UpdateUserRequest]
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// PageVisitRepository stores behavioural-analytics beacons.
type PageVisitRepository interface {
	Record(ctx context.Context, req model.RecordPageVisitRequest) (*model.PageVisit, error)
	ListRecent(ctx context.Context, limit int) ([]model.PageVisit, error)
}
