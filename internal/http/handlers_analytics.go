package httpx

import (
	"context"
	"net/http"

	"github.com/hr3-suite/hr3-admin/internal/domain/model"
)

// AnalyticsServiceInterface defines the analytics operations handlers depend on.
type AnalyticsServiceInterface interface {
	Record(ctx context.Context, req model.RecordPageVisitRequest) error
	ListRecent(ctx context.Context, limit int) ([]model.PageVisit, error)
}

// AnalyticsHandlers serves the page-visit beacon and the recent-visit listing.
type AnalyticsHandlers struct {
	Svc AnalyticsServiceInterface
}

// RecordVisit handles the navigation-teardown beacon. Attribution comes from
// the request's session when present; the payload cannot claim another user.
// The beacon is best-effort, so accepted beacons return 202 immediately.
// POST /api/integration/page-visit.
func (h *AnalyticsHandlers) RecordVisit(w http.ResponseWriter, r *http.Request) {
	var req model.RecordPageVisitRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	req.UserID = nil
	if session, ok := GetUserSessionFromContext(r.Context()); ok {
		req.UserID = &session.UserID
	}

	if err := h.Svc.Record(r.Context(), req); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// ListVisits handles GET /api/integration/page-visit.
func (h *AnalyticsHandlers) ListVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.Svc.ListRecent(r.Context(), 0)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
		return
	}
	if visits == nil {
		visits = []model.PageVisit{}
	}

	WriteJSON(w, http.StatusOK, map[string]any{"pageVisits": visits})
}
