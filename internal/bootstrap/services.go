package bootstrap

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/hr3-suite/hr3-admin/config"
	"github.com/hr3-suite/hr3-admin/internal/data"
	"github.com/hr3-suite/hr3-admin/internal/domain/model"
	"github.com/hr3-suite/hr3-admin/internal/observability/statsd"
	"github.com/hr3-suite/hr3-admin/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Benefits          *service.ResourceService[model.Benefit, model.CreateBenefitRequest, model.UpdateBenefitRequest]
	BenefitRequests   *service.ResourceService[model.BenefitRequest, model.CreateBenefitRequestRequest, model.UpdateBenefitRequestRequest]
	Incentives        *service.ResourceService[model.Incentive, model.CreateIncentiveRequest, model.UpdateIncentiveRequest]
	IncentiveTracking *service.ResourceService[model.IncentiveTracking, model.CreateIncentiveTrackingRequest, model.UpdateIncentiveTrackingRequest]
	CompensationPlans *service.ResourceService[model.CompensationPlan, model.CreateCompensationPlanRequest, model.UpdateCompensationPlanRequest]
	Analytics         *service.AnalyticsService
	Auth              *service.AuthService
	Metrics           *statsd.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices builds the full service container.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sink := buildMetricsSink(logger, deps.Config.Observability.Metrics)

	auth, err := BuildAuthService(AuthDeps{
		Auth:        deps.Config.Auth,
		DB:          deps.DB,
		RedisClient: deps.RedisClient,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build auth service: %w", err)
	}

	container := &ServiceContainer{
		Benefits: service.MustNewResourceService(service.ResourceServiceOptions[model.Benefit, model.CreateBenefitRequest, model.UpdateBenefitRequest]{
			Repo: data.NewBenefitRepo(deps.DB), Name: "benefit", Logger: logger,
		}),
		BenefitRequests: service.MustNewResourceService(service.ResourceServiceOptions[model.BenefitRequest, model.CreateBenefitRequestRequest, model.UpdateBenefitRequestRequest]{
			Repo: data.NewBenefitRequestRepo(deps.DB), Name: "benefit_request", Logger: logger,
		}),
		Incentives: service.MustNewResourceService(service.ResourceServiceOptions[model.Incentive, model.CreateIncentiveRequest, model.UpdateIncentiveRequest]{
			Repo: data.NewIncentiveRepo(deps.DB), Name: "incentive", Logger: logger,
		}),
		IncentiveTracking: service.MustNewResourceService(service.ResourceServiceOptions[model.IncentiveTracking, model.CreateIncentiveTrackingRequest, model.UpdateIncentiveTrackingRequest]{
			Repo: data.NewIncentiveTrackingRepo(deps.DB), Name: "incentive_tracking", Logger: logger,
		}),
		CompensationPlans: service.MustNewResourceService(service.ResourceServiceOptions[model.CompensationPlan, model.CreateCompensationPlanRequest, model.UpdateCompensationPlanRequest]{
			Repo: data.NewCompensationPlanRepo(deps.DB), Name: "compensation_plan", Logger: logger,
		}),
		Auth:    auth,
		Metrics: sink,
	}

	if deps.Config.Analytics.Enabled {
		analytics, analyticsErr := service.NewAnalyticsService(service.AnalyticsServiceOptions{
			Visits:    data.NewPageVisitRepo(deps.DB),
			QueueSize: deps.Config.Analytics.QueueSize,
			Logger:    logger,
			Metrics:   sink,
		})
		if analyticsErr != nil {
			return nil, fmt.Errorf("build analytics service: %w", analyticsErr)
		}
		container.Analytics = analytics
	}

	return container, nil
}

// Close releases service resources, draining the analytics queue.
func (c *ServiceContainer) Close() error {
	var errs []error
	if c.Analytics != nil {
		errs = append(errs, c.Analytics.Close())
	}
	if c.Metrics != nil {
		errs = append(errs, c.Metrics.Close())
	}
	return errors.Join(errs...)
}

// buildMetricsSink configures the StatsD client, falling back to a disabled
// client when the endpoint cannot be reached so metrics never block startup.
func buildMetricsSink(logger *slog.Logger, cfg config.ObservabilityMetricsConfig) *statsd.Client {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.IsEnabled(),
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Warn("statsd client unavailable, metrics disabled", "error", err)
		disabled, _ := statsd.NewClient(statsd.Config{})
		return disabled
	}
	if client.Enabled() {
		logger.Info("metrics emission enabled", "address", cfg.StatsdAddress, "prefix", cfg.Prefix)
	}
	return client
}
