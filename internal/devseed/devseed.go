// Package devseed populates a development database with a small, repeatable
// data set: two login accounts, a handful of benefit and incentive programs,
// and enough enrollment activity to make the admin views non-empty.
// Re-running the seed is safe; existing records are left alone.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hr3-suite/hr3-admin/internal/data"
	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
	"github.com/hr3-suite/hr3-admin/internal/domain/model"
	"github.com/hr3-suite/hr3-admin/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB        *sql.DB
	users     *data.UserRepo
	benefits  *service.ResourceService[model.Benefit, model.CreateBenefitRequest, model.UpdateBenefitRequest]
	requests  *service.ResourceService[model.BenefitRequest, model.CreateBenefitRequestRequest, model.UpdateBenefitRequestRequest]
	programs  *service.ResourceService[model.Incentive, model.CreateIncentiveRequest, model.UpdateIncentiveRequest]
	tracking  *service.ResourceService[model.IncentiveTracking, model.CreateIncentiveTrackingRequest, model.UpdateIncentiveTrackingRequest]
	compPlans *service.ResourceService[model.CompensationPlan, model.CreateCompensationPlanRequest, model.UpdateCompensationPlanRequest]
}

// NewServices constructs all required services for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		DB:    db,
		users: data.NewUserRepo(db),
		benefits: service.MustNewResourceService(service.ResourceServiceOptions[model.Benefit, model.CreateBenefitRequest, model.UpdateBenefitRequest]{
			Repo: data.NewBenefitRepo(db),
			Name: "benefit",
		}),
		requests: service.MustNewResourceService(service.ResourceServiceOptions[model.BenefitRequest, model.CreateBenefitRequestRequest, model.UpdateBenefitRequestRequest]{
			Repo: data.NewBenefitRequestRepo(db),
			Name: "benefit_request",
		}),
		programs: service.MustNewResourceService(service.ResourceServiceOptions[model.Incentive, model.CreateIncentiveRequest, model.UpdateIncentiveRequest]{
			Repo: data.NewIncentiveRepo(db),
			Name: "incentive",
		}),
		tracking: service.MustNewResourceService(service.ResourceServiceOptions[model.IncentiveTracking, model.CreateIncentiveTrackingRequest, model.UpdateIncentiveTrackingRequest]{
			Repo: data.NewIncentiveTrackingRepo(db),
			Name: "incentive_tracking",
		}),
		compPlans: service.MustNewResourceService(service.ResourceServiceOptions[model.CompensationPlan, model.CreateCompensationPlanRequest, model.UpdateCompensationPlanRequest]{
			Repo: data.NewCompensationPlanRepo(db),
			Name: "compensation_plan",
		}),
	}
}

// Run executes the full development seeding workflow against the provided DB.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	users, failures := seedUsers(ctx, svcs.users, logger)
	benefits, f := seedBenefits(ctx, svcs.benefits, logger)
	failures += f
	incentives, f := seedIncentives(ctx, svcs.programs, logger)
	failures += f
	failures += seedCompensationPlans(ctx, svcs.compPlans, logger)
	failures += seedEnrollmentActivity(ctx, svcs, users, benefits, incentives, logger)

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func seedUsers(ctx context.Context, repo *data.UserRepo, logger *slog.Logger) (map[string]string, int) {
	accounts := []model.CreateUserRequest{
		{
			Email:     "admin@hr3.local",
			Password:  "admin-password",
			FirstName: "Ada",
			LastName:  "Admin",
			Role:      domainauth.RoleAdmin,
			Hr:        domainauth.HrOne,
		},
		{
			Email:     "employee@hr3.local",
			Password:  "employee-password",
			FirstName: "Evan",
			LastName:  "Employee",
			Role:      domainauth.RoleEmployee,
			Hr:        domainauth.HrTwo,
		},
	}

	ids := make(map[string]string, len(accounts))
	failures := 0
	for _, req := range accounts {
		if existing, err := repo.GetByEmail(ctx, req.Email); err == nil {
			logger.InfoContext(ctx, "user already exists", "email", req.Email)
			ids[req.Email] = existing.ID
			continue
		} else if !errors.Is(err, data.ErrUserNotFound) {
			logger.ErrorContext(ctx, "failed to look up user", "email", req.Email, "error", err)
			failures++
			continue
		}

		created, err := repo.Create(ctx, req)
		if err != nil {
			logger.ErrorContext(ctx, "failed to create user", "email", req.Email, "error", err)
			failures++
			continue
		}
		logger.InfoContext(ctx, "created user", "email", req.Email, "role", req.Role)
		ids[req.Email] = created.ID
	}
	return ids, failures
}

func seedBenefits(
	ctx context.Context,
	svc *service.ResourceService[model.Benefit, model.CreateBenefitRequest, model.UpdateBenefitRequest],
	logger *slog.Logger,
) (map[string]string, int) {
	plans := []model.CreateBenefitRequest{
		{Name: "Health Insurance Plan A", Description: strPtr("Company-sponsored HMO coverage"), Type: model.BenefitTypeHealth, Amount: 2500},
		{Name: "Group Life Insurance", Description: strPtr("Term life coverage, 24x monthly salary"), Type: model.BenefitTypeInsurance, Amount: 1200},
		{Name: "Rice Allowance", Type: model.BenefitTypeAllowance, Amount: 2000},
		{Name: "Retirement Fund Match", Description: strPtr("Employer match up to 5% of base pay"), Type: model.BenefitTypeRetirement, Amount: 0},
	}

	existing, err := svc.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list benefits", "error", err)
		return nil, 1
	}
	byName := make(map[string]string, len(existing))
	for _, b := range existing {
		byName[b.Name] = b.ID
	}

	ids := make(map[string]string, len(plans))
	failures := 0
	for _, req := range plans {
		if id, ok := byName[req.Name]; ok {
			logger.InfoContext(ctx, "benefit already exists", "name", req.Name)
			ids[req.Name] = id
			continue
		}
		created, cerr := svc.Create(ctx, req)
		if cerr != nil {
			logger.ErrorContext(ctx, "failed to create benefit", "name", req.Name, "error", cerr)
			failures++
			continue
		}
		ids[req.Name] = created.ID
	}
	return ids, failures
}

func seedIncentives(
	ctx context.Context,
	svc *service.ResourceService[model.Incentive, model.CreateIncentiveRequest, model.UpdateIncentiveRequest],
	logger *slog.Logger,
) (map[string]string, int) {
	programs := []model.CreateIncentiveRequest{
		{Name: "Quarterly Sales Bonus", Description: strPtr("Paid on hitting quarterly quota"), RewardType: model.RewardTypeMonetary, RewardValue: float64Ptr(15000)},
		{Name: "Referral Commission", RewardType: model.RewardTypeCommission, RewardValue: float64Ptr(5000)},
		{Name: "Employee of the Month", Description: strPtr("Recognition award with plaque"), RewardType: model.RewardTypeRecognition},
		{Name: "Extra Leave Day", RewardType: model.RewardTypePerk},
	}

	existing, err := svc.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list incentives", "error", err)
		return nil, 1
	}
	byName := make(map[string]string, len(existing))
	for _, p := range existing {
		byName[p.Name] = p.ID
	}

	ids := make(map[string]string, len(programs))
	failures := 0
	for _, req := range programs {
		if id, ok := byName[req.Name]; ok {
			logger.InfoContext(ctx, "incentive already exists", "name", req.Name)
			ids[req.Name] = id
			continue
		}
		created, cerr := svc.Create(ctx, req)
		if cerr != nil {
			logger.ErrorContext(ctx, "failed to create incentive", "name", req.Name, "error", cerr)
			failures++
			continue
		}
		ids[req.Name] = created.ID
	}
	return ids, failures
}

func seedCompensationPlans(
	ctx context.Context,
	svc *service.ResourceService[model.CompensationPlan, model.CreateCompensationPlanRequest, model.UpdateCompensationPlanRequest],
	logger *slog.Logger,
) int {
	effective := time.Date(time.Now().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	plans := []model.CreateCompensationPlanRequest{
		{Name: "Associate Band", Grade: "G1", BaseSalary: 25000, Allowance: 2000, EffectiveDate: effective},
		{Name: "Senior Band", Grade: "G2", BaseSalary: 45000, Allowance: 3500, EffectiveDate: effective},
		{Name: "Manager Band", Grade: "G3", BaseSalary: 70000, Allowance: 5000, EffectiveDate: effective},
	}

	existing, err := svc.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list compensation plans", "error", err)
		return 1
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.Grade] = true
	}

	failures := 0
	for _, req := range plans {
		if seen[req.Grade] {
			logger.InfoContext(ctx, "compensation plan already exists", "grade", req.Grade)
			continue
		}
		if _, cerr := svc.Create(ctx, req); cerr != nil {
			logger.ErrorContext(ctx, "failed to create compensation plan", "grade", req.Grade, "error", cerr)
			failures++
		}
	}
	return failures
}

// seedEnrollmentActivity files one benefit request and one incentive tracking
// record for the employee account, so review queues have content on first run.
func seedEnrollmentActivity(
	ctx context.Context,
	svcs Services,
	users map[string]string,
	benefits map[string]string,
	incentives map[string]string,
	logger *slog.Logger,
) int {
	employeeID, ok := users["employee@hr3.local"]
	if !ok {
		logger.WarnContext(ctx, "skipping enrollment activity", "reason", "employee account missing")
		return 0
	}

	failures := 0
	if benefitID, found := benefits["Health Insurance Plan A"]; found {
		if requestsEmpty(ctx, svcs, logger) {
			_, err := svcs.requests.Create(ctx, model.CreateBenefitRequestRequest{
				BenefitID: benefitID,
				UserID:    employeeID,
				Note:      strPtr("Enrolling dependents for the coming year"),
			})
			if err != nil {
				logger.ErrorContext(ctx, "failed to create benefit request", "error", err)
				failures++
			}
		}
	}
	if incentiveID, found := incentives["Quarterly Sales Bonus"]; found {
		if trackingEmpty(ctx, svcs, logger) {
			_, err := svcs.tracking.Create(ctx, model.CreateIncentiveTrackingRequest{
				IncentiveID: incentiveID,
				UserID:      employeeID,
				Amount:      float64Ptr(15000),
			})
			if err != nil {
				logger.ErrorContext(ctx, "failed to create incentive tracking record", "error", err)
				failures++
			}
		}
	}
	return failures
}

func requestsEmpty(ctx context.Context, svcs Services, logger *slog.Logger) bool {
	existing, err := svcs.requests.List(ctx)
	if err != nil {
		logger.WarnContext(ctx, "failed to list benefit requests", "error", err)
		return false
	}
	return len(existing) == 0
}

func trackingEmpty(ctx context.Context, svcs Services, logger *slog.Logger) bool {
	existing, err := svcs.tracking.List(ctx)
	if err != nil {
		logger.WarnContext(ctx, "failed to list incentive tracking records", "error", err)
		return false
	}
	return len(existing) == 0
}

func strPtr(s string) *string { return &s }

func float64Ptr(f float64) *float64 { return &f }
