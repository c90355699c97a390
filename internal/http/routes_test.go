package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hr3-suite/hr3-admin/internal/core"
	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
	"github.com/hr3-suite/hr3-admin/internal/domain/model"
	"github.com/hr3-suite/hr3-admin/internal/service"
)

// stubRepo satisfies the CRUD contract for resources a test never touches.
type stubRepo[T any, C any, U any] struct{}

func (stubRepo[T, C, U]) Create(context.Context, C) (*T, error) {
	return nil, errors.New("not implemented")
}
func (stubRepo[T, C, U]) GetByID(context.Context, string) (*T, error) {
	return nil, errors.New("not implemented")
}
func (stubRepo[T, C, U]) List(context.Context) ([]T, error) { return nil, nil }
func (stubRepo[T, C, U]) Update(context.Context, string, U) (*T, error) {
	return nil, errors.New("not implemented")
}
func (stubRepo[T, C, U]) Delete(context.Context, string) (bool, error) { return false, nil }

func stubResourceService[T any, C any, U any](t *testing.T, repo core.CRUDRepository[T, C, U], name string) *service.ResourceService[T, C, U] {
	t.Helper()
	svc, err := service.NewResourceService(service.ResourceServiceOptions[T, C, U]{Repo: repo, Name: name})
	require.NoError(t, err)
	return svc
}

func newTestRouter(t *testing.T, auth *fakeAuthService, benefits core.BenefitRepository, allowedHr ...domainauth.HrTag) http.Handler {
	t.Helper()
	return NewRouter(RouterServices{
		AllowedHr:         allowedHr,
		Benefits:          stubResourceService(t, benefits, "benefit"),
		BenefitRequests:   stubResourceService[model.BenefitRequest, model.CreateBenefitRequestRequest, model.UpdateBenefitRequestRequest](t, stubRepo[model.BenefitRequest, model.CreateBenefitRequestRequest, model.UpdateBenefitRequestRequest]{}, "benefit_request"),
		Incentives:        stubResourceService[model.Incentive, model.CreateIncentiveRequest, model.UpdateIncentiveRequest](t, stubRepo[model.Incentive, model.CreateIncentiveRequest, model.UpdateIncentiveRequest]{}, "incentive"),
		IncentiveTracking: stubResourceService[model.IncentiveTracking, model.CreateIncentiveTrackingRequest, model.UpdateIncentiveTrackingRequest](t, stubRepo[model.IncentiveTracking, model.CreateIncentiveTrackingRequest, model.UpdateIncentiveTrackingRequest]{}, "incentive_tracking"),
		CompensationPlans: stubResourceService[model.CompensationPlan, model.CreateCompensationPlanRequest, model.UpdateCompensationPlanRequest](t, stubRepo[model.CompensationPlan, model.CreateCompensationPlanRequest, model.UpdateCompensationPlanRequest]{}, "compensation_plan"),
		Analytics:         &fakeAnalyticsService{},
		Auth:              auth,
	})
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, newFakeAuthService(), newFakeBenefitStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_NotFoundCarriesHomeHint(t *testing.T) {
	router := newTestRouter(t, newFakeAuthService(), newFakeBenefitStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "not_found", body["error"])
	assert.Equal(t, "/", body["home"])
}

func TestRouter_AdminGateOnResources(t *testing.T) {
	auth := newFakeAuthService()
	auth.sessions["sess-admin"] = adminSession()
	auth.sessions["sess-emp"] = employeeSession("1")
	store := newFakeBenefitStore()
	created, err := store.Create(context.Background(), model.CreateBenefitRequest{
		Name: "Vision Plan", Type: model.BenefitTypeHealth, Amount: 120,
	})
	require.NoError(t, err)

	router := newTestRouter(t, auth, store)

	t.Run("anonymous rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, apiRequest("/api/benefit", ""))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("employee cannot write", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/benefit/"+created.ID, nil)
		r.Header.Set("Accept", "application/json")
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-emp"})
		router.ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("employee cannot read review queues", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, apiRequest("/api/benefitRequest", "sess-emp"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin gets keyed collection", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, apiRequest("/api/benefit", "sess-admin"))

		require.Equal(t, http.StatusOK, w.Code)
		items, ok := decodeBody(t, w)["benefits"].([]any)
		require.True(t, ok)
		assert.Len(t, items, 1)
	})
}

func TestRouter_MemberGateOnCatalogReads(t *testing.T) {
	auth := newFakeAuthService()
	auth.sessions["sess-emp"] = employeeSession(domainauth.HrOne)
	store := newFakeBenefitStore()
	_, err := store.Create(context.Background(), model.CreateBenefitRequest{
		Name: "Rice Allowance", Type: model.BenefitTypeAllowance, Amount: 1500,
	})
	require.NoError(t, err)

	t.Run("employee reads the catalog", func(t *testing.T) {
		router := newTestRouter(t, auth, store)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, apiRequest("/api/benefit", "sess-emp"))

		require.Equal(t, http.StatusOK, w.Code)
		items, ok := decodeBody(t, w)["benefits"].([]any)
		require.True(t, ok)
		assert.Len(t, items, 1)
	})

	t.Run("unserved instance rejected", func(t *testing.T) {
		router := newTestRouter(t, auth, store, domainauth.HrTwo)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, apiRequest("/api/benefit", "sess-emp"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRouter_LoginIsAnonymousOnly(t *testing.T) {
	auth := newFakeAuthService()
	auth.sessions["sess-emp"] = employeeSession(domainauth.HrOne)
	router := newTestRouter(t, auth, newFakeBenefitStore())

	t.Run("authenticated api login rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"emp@example.com","password":"secret12"}`))
		r.Header.Set("Accept", "application/json")
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-emp"})
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "already_authenticated", decodeBody(t, w)["error"])
	})

	t.Run("authenticated browser login redirected to dashboard", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, browserRequest("/auth/login", "sess-emp"))

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})
}

func TestRouter_AnalyticsBeaconIsPublic(t *testing.T) {
	router := newTestRouter(t, newFakeAuthService(), newFakeBenefitStore())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/integration/page-visit",
		strings.NewReader(`{"path":"/dashboard","duration_ms":100}`))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestRouterServices_Validate(t *testing.T) {
	assert.Error(t, RouterServices{}.Validate())
}
