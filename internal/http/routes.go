package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hr3-suite/hr3-admin/internal/data"
	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
	"github.com/hr3-suite/hr3-admin/internal/domain/model"
	"github.com/hr3-suite/hr3-admin/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Benefits          *service.ResourceService[model.Benefit, model.CreateBenefitRequest, model.UpdateBenefitRequest]
	BenefitRequests   *service.ResourceService[model.BenefitRequest, model.CreateBenefitRequestRequest, model.UpdateBenefitRequestRequest]
	Incentives        *service.ResourceService[model.Incentive, model.CreateIncentiveRequest, model.UpdateIncentiveRequest]
	IncentiveTracking *service.ResourceService[model.IncentiveTracking, model.CreateIncentiveTrackingRequest, model.UpdateIncentiveTrackingRequest]
	CompensationPlans *service.ResourceService[model.CompensationPlan, model.CreateCompensationPlanRequest, model.UpdateCompensationPlanRequest]
	Analytics         AnalyticsServiceInterface
	Auth              AuthServiceInterface
	// AllowedHr scopes member routes to the regional HR instances this
	// deployment serves. Empty admits all instances.
	AllowedHr    []domainauth.HrTag
	CookieDomain string
	// SSOCallbackURL is passed through to the auth handlers; empty when the
	// deployment runs credential-only.
	SSOCallbackURL string
	Logger         *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	adminGate := Guard(services.Auth, domainauth.SingleRole(domainauth.RoleAdmin))
	memberGate := Guard(services.Auth, domainauth.RoleList(allowedHrOrAll(services.AllowedHr)...))
	anonGate := Guard(services.Auth, domainauth.PublicOnly())

	// Program catalogs are readable by any member of a served instance;
	// mutations and the review/plan resources stay admin-only.
	registerResource(mux, "/api/benefit", &ResourceHandlers[model.Benefit, model.CreateBenefitRequest, model.UpdateBenefitRequest]{
		Svc:      services.Benefits,
		Key:      "benefits",
		NotFound: data.ErrBenefitNotFound,
	}, memberGate, adminGate)
	registerResource(mux, "/api/benefitRequest", &ResourceHandlers[model.BenefitRequest, model.CreateBenefitRequestRequest, model.UpdateBenefitRequestRequest]{
		Svc:      services.BenefitRequests,
		Key:      "benefitRequests",
		NotFound: data.ErrBenefitRequestNotFound,
	}, adminGate, adminGate)
	registerResource(mux, "/api/incentive", &ResourceHandlers[model.Incentive, model.CreateIncentiveRequest, model.UpdateIncentiveRequest]{
		Svc:      services.Incentives,
		Key:      "incentives",
		NotFound: data.ErrIncentiveNotFound,
	}, memberGate, adminGate)
	registerResource(mux, "/api/incentiveTracking", &ResourceHandlers[model.IncentiveTracking, model.CreateIncentiveTrackingRequest, model.UpdateIncentiveTrackingRequest]{
		Svc:      services.IncentiveTracking,
		Key:      "incentiveTrackings",
		NotFound: data.ErrIncentiveTrackingNotFound,
	}, adminGate, adminGate)
	registerResource(mux, "/api/compensation", &ResourceHandlers[model.CompensationPlan, model.CreateCompensationPlanRequest, model.UpdateCompensationPlanRequest]{
		Svc:      services.CompensationPlans,
		Key:      "compensations",
		NotFound: data.ErrCompensationPlanNotFound,
	}, adminGate, adminGate)

	authHandlers := &AuthHandlers{
		Svc:            services.Auth,
		CookieDomain:   services.CookieDomain,
		SSOCallbackURL: services.SSOCallbackURL,
		Logger:         services.Logger,
	}
	registerAuthRoutes(mux, authHandlers, anonGate)

	if services.Analytics != nil {
		analyticsHandlers := &AnalyticsHandlers{Svc: services.Analytics}
		mux.Handle("POST /api/integration/page-visit",
			OptionalSession(services.Auth)(http.HandlerFunc(analyticsHandlers.RecordVisit)))
		mux.Handle("GET /api/integration/page-visit", adminGate(http.HandlerFunc(analyticsHandlers.ListVisits)))
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Everything unmatched gets a JSON not-found with a way back home.
	mux.Handle("/", http.HandlerFunc(notFoundHandler))

	return mux
}

// allowedHrOrAll guards against an empty allow-list, which would lock every
// member route. No configuration means the deployment serves all instances.
func allowedHrOrAll(tags []domainauth.HrTag) []domainauth.HrTag {
	if len(tags) > 0 {
		return tags
	}
	return []domainauth.HrTag{domainauth.HrOne, domainauth.HrTwo, domainauth.HrThree, domainauth.HrFour}
}

// registerResource wires the five CRUD routes of one resource. Reads and
// writes can sit behind different gates.
func registerResource[T any, C any, U any](
	mux *http.ServeMux,
	base string,
	h *ResourceHandlers[T, C, U],
	readGate func(http.Handler) http.Handler,
	writeGate func(http.Handler) http.Handler,
) {
	mux.Handle("POST "+base, writeGate(http.HandlerFunc(h.Create)))
	mux.Handle("GET "+base, readGate(http.HandlerFunc(h.List)))
	mux.Handle("GET "+base+"/{id}", readGate(http.HandlerFunc(h.Get)))
	mux.Handle("PUT "+base+"/{id}", writeGate(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE "+base+"/{id}", writeGate(http.HandlerFunc(h.Delete)))
}

// registerAuthRoutes wires the auth endpoints. The two login entry points are
// anonymous-only: an already-authenticated caller is sent to the dashboard
// (browsers) or told off with 403 (API clients).
func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, anonGate func(http.Handler) http.Handler) {
	mux.Handle("POST /api/auth/login", anonGate(http.HandlerFunc(h.Login)))
	mux.Handle("POST /api/auth/logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /api/auth/check-auth", http.HandlerFunc(h.CheckAuth))
	mux.Handle("GET /api/auth/status", http.HandlerFunc(h.Status))

	mux.Handle("GET /auth/login", anonGate(http.HandlerFunc(h.BeginSSO)))
	mux.Handle("GET /auth/callback", http.HandlerFunc(h.SSOCallback))
}

// notFoundHandler answers unmatched paths with a pointer back to the root.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusNotFound, map[string]string{
		"error":   "not_found",
		"message": "no route for " + r.URL.Path,
		"home":    "/",
	})
}

// OptionalSession injects the session into the request context when one can
// be resolved, and otherwise lets the request continue anonymously.
func OptionalSession(authSvc AuthServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session := getSessionFromRequest(r, authSvc); session != nil {
				r = r.WithContext(SetSessionInContext(r.Context(), session))
			}
			next.ServeHTTP(w, r)
		})
	}
}

var errMisconfiguredRouter = errors.New("router services incomplete")

// ValidateServices reports wiring gaps before the server starts listening.
func (s RouterServices) Validate() error {
	if s.Auth == nil {
		return errMisconfiguredRouter
	}
	if s.Benefits == nil || s.BenefitRequests == nil || s.Incentives == nil ||
		s.IncentiveTracking == nil || s.CompensationPlans == nil {
		return errMisconfiguredRouter
	}
	return nil
}
