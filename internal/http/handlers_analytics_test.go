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

	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
	"github.com/hr3-suite/hr3-admin/internal/domain/model"
	"github.com/hr3-suite/hr3-admin/internal/testutil"
)

type fakeAnalyticsService struct {
	recorded []model.RecordPageVisitRequest
	recent   []model.PageVisit
	err      error
}

func (f *fakeAnalyticsService) Record(_ context.Context, req model.RecordPageVisitRequest) error {
	if f.err != nil {
		return f.err
	}
	f.recorded = append(f.recorded, req)
	return nil
}

func (f *fakeAnalyticsService) ListRecent(_ context.Context, _ int) ([]model.PageVisit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recent, nil
}

func TestAnalyticsHandlers_RecordVisit(t *testing.T) {
	svc := &fakeAnalyticsService{}
	h := &AnalyticsHandlers{Svc: svc}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/integration/page-visit",
		strings.NewReader(`{"path":"/dashboard","duration_ms":4200}`))
	h.RecordVisit(w, r)

	require.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, svc.recorded, 1)
	assert.Equal(t, "/dashboard", svc.recorded[0].Path)
	assert.Nil(t, svc.recorded[0].UserID, "anonymous beacon carries no user")
}

func TestAnalyticsHandlers_RecordVisit_AttributionFromSession(t *testing.T) {
	svc := &fakeAnalyticsService{}
	h := &AnalyticsHandlers{Svc: svc}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/integration/page-visit",
		strings.NewReader(`{"path":"/benefits","duration_ms":900,"user_id":"spoofed"}`))
	session := &domainauth.Session{ID: "sess-1", UserID: "user-1", Role: domainauth.RoleEmployee}
	r = r.WithContext(SetSessionInContext(r.Context(), session))
	h.RecordVisit(w, r)

	require.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, svc.recorded, 1)
	require.NotNil(t, svc.recorded[0].UserID)
	assert.Equal(t, "user-1", *svc.recorded[0].UserID, "session wins over payload attribution")
}

func TestAnalyticsHandlers_RecordVisit_Invalid(t *testing.T) {
	svc := &fakeAnalyticsService{err: errors.New("path is required and cannot be empty")}
	h := &AnalyticsHandlers{Svc: svc}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/integration/page-visit",
		strings.NewReader(`{"path":"","duration_ms":0}`))
	h.RecordVisit(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsHandlers_ListVisits(t *testing.T) {
	svc := &fakeAnalyticsService{recent: []model.PageVisit{
		{ID: "v1", Path: "/dashboard", DurationMS: 4200, VisitedAt: testutil.TestTime()},
	}}
	h := &AnalyticsHandlers{Svc: svc}

	w := httptest.NewRecorder()
	h.ListVisits(w, httptest.NewRequest(http.MethodGet, "/api/integration/page-visit", nil))

	require.Equal(t, http.StatusOK, w.Code)
	visits, ok := decodeBody(t, w)["pageVisits"].([]any)
	require.True(t, ok)
	assert.Len(t, visits, 1)
}

func TestAnalyticsHandlers_ListVisits_EmptyIsArray(t *testing.T) {
	h := &AnalyticsHandlers{Svc: &fakeAnalyticsService{}}

	w := httptest.NewRecorder()
	h.ListVisits(w, httptest.NewRequest(http.MethodGet, "/api/integration/page-visit", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pageVisits":[]}`, w.Body.String())
}
