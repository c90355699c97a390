package httpx

import (
	"errors"
	"net/http"
	"strings"

	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
)

// Guard returns the single gate middleware for a routed subtree. The policy
// decides admission; the middleware performs exactly one identity check per
// request (session cookie, one store lookup) and maps the decision to a
// response: admitted requests continue with the session in context, rejected
// browser requests are redirected, rejected API requests get 401/403 JSON.
//
// Any session-store error resolves as unauthenticated. Fail closed.
func Guard(authSvc AuthServiceInterface, policy domainauth.GuardPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := getSessionFromRequest(r, authSvc)

			switch policy.Decide(session) {
			case domainauth.DecisionAllow:
				ctx := SetSessionInContext(r.Context(), session)
				next.ServeHTTP(w, r.WithContext(ctx))
			case domainauth.DecisionRedirectHome:
				rejectToHome(w, r, session)
			case domainauth.DecisionRedirectDashboard:
				rejectToDashboard(w, r)
			default:
				rejectToHome(w, r, session)
			}
		})
	}
}

// rejectToHome handles a denied request on a protected subtree: browsers go
// back to the root, API clients get 401 (no identity) or 403 (wrong identity).
func rejectToHome(w http.ResponseWriter, r *http.Request, session *domainauth.Session) {
	if isBrowserRequest(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if session == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusForbidden,
		ErrCode: "insufficient_permissions",
		Err:     errors.New("insufficient permissions"),
	})
}

// rejectToDashboard handles an authenticated request on a public-only subtree.
func rejectToDashboard(w http.ResponseWriter, r *http.Request) {
	if isBrowserRequest(r) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusForbidden,
		ErrCode: "already_authenticated",
		Err:     errors.New("endpoint is only available to anonymous clients"),
	})
}

// getSessionFromRequest retrieves and validates a session from the request.
func getSessionFromRequest(r *http.Request, authSvc AuthServiceInterface) *domainauth.Session {
	sessionCookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}

	session, err := authSvc.GetSession(r.Context(), sessionCookie.Value)
	if err != nil {
		return nil
	}

	return session
}

// isBrowserRequest determines if a request is from a browser based on:
// 1. Path prefix - API routes start with /api/
// 2. Accept header - browsers typically accept text/html.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}

	accept := r.Header.Get("Accept")
	if accept == "" {
		// No Accept header, assume browser for non-API routes
		return true
	}

	return strings.Contains(accept, "text/html")
}
