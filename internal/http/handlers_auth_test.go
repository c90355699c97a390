package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hr3-suite/hr3-admin/internal/adapters/credauth"
	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
	"github.com/hr3-suite/hr3-admin/internal/service"
)

func newAuthHandlers(svc AuthServiceInterface) *AuthHandlers {
	return &AuthHandlers{Svc: svc, SSOCallbackURL: "https://app.example.com/auth/callback"}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandlers_Login(t *testing.T) {
	svc := newFakeAuthService()
	svc.loginSession = adminSession()
	h := newAuthHandlers(svc)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ada.ops@example.com","password":"s3cret"}`))
	h.Login(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "response must carry a user object")
	assert.Equal(t, "user-admin", user["id"])
	assert.Equal(t, "Admin", user["role"])

	cookie := findCookie(t, w, sessionCookieName)
	require.NotNil(t, cookie, "session cookie must be set")
	assert.Equal(t, "sess-admin", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Positive(t, cookie.MaxAge)
}

func TestAuthHandlers_Login_InvalidCredentials(t *testing.T) {
	svc := newFakeAuthService()
	svc.loginErr = credauth.ErrInvalidCredentials
	h := newAuthHandlers(svc)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ada.ops@example.com","password":"wrong"}`))
	h.Login(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decodeBody(t, w)["error"])
	assert.Nil(t, findCookie(t, w, sessionCookieName))
}

func TestAuthHandlers_Login_BadPayload(t *testing.T) {
	h := newAuthHandlers(newFakeAuthService())

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"email":`},
		{"unknown field", `{"email":"a@b.c","password":"x","remember":true}`},
		{"missing password", `{"email":"a@b.c"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			h.Login(w, r)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandlers_BeginSSO(t *testing.T) {
	svc := newFakeAuthService()
	svc.beginResult = &service.BeginSSOLoginResult{
		AuthURL: "https://idp.example.com/authorize?state=abc",
		State:   "abc",
		Nonce:   "xyz",
	}
	h := newAuthHandlers(svc)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/benefits", nil)
	h.BeginSSO(w, r)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://idp.example.com/authorize?state=abc", w.Header().Get("Location"))

	stateCookie := findCookie(t, w, stateCookieName)
	require.NotNil(t, stateCookie)
	assert.Equal(t, "abc", stateCookie.Value)

	nonceCookie := findCookie(t, w, nonceCookieName)
	require.NotNil(t, nonceCookie)
	assert.Equal(t, "xyz", nonceCookie.Value)

	redirectCookie := findCookie(t, w, postLoginCookieName)
	require.NotNil(t, redirectCookie)
	assert.Equal(t, "/benefits", redirectCookie.Value)
}

func TestAuthHandlers_BeginSSO_UnsafeRedirectFallsBack(t *testing.T) {
	svc := newFakeAuthService()
	svc.beginResult = &service.BeginSSOLoginResult{AuthURL: "https://idp.example.com/a", State: "s", Nonce: "n"}
	h := newAuthHandlers(svc)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=https://evil.example.com/", nil)
	h.BeginSSO(w, r)

	redirectCookie := findCookie(t, w, postLoginCookieName)
	require.NotNil(t, redirectCookie)
	assert.Equal(t, "/", redirectCookie.Value)
}

func TestAuthHandlers_SSOCallback(t *testing.T) {
	svc := newFakeAuthService()
	svc.completeSession = adminSession()
	h := newAuthHandlers(svc)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/auth/callback?code=code-1&state=state-1", nil)
	r.AddCookie(&http.Cookie{Name: stateCookieName, Value: "state-1"})
	r.AddCookie(&http.Cookie{Name: nonceCookieName, Value: "nonce-1"})
	r.AddCookie(&http.Cookie{Name: postLoginCookieName, Value: "/incentives"})
	h.SSOCallback(w, r)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/incentives", w.Header().Get("Location"))

	assert.Equal(t, service.CompleteSSOLoginInput{Code: "code-1", State: "state-1", Nonce: "nonce-1"}, svc.gotComplete)

	sessionCookie := findCookie(t, w, sessionCookieName)
	require.NotNil(t, sessionCookie)
	assert.Equal(t, "sess-admin", sessionCookie.Value)
}

func TestAuthHandlers_SSOCallback_StateMismatch(t *testing.T) {
	h := newAuthHandlers(newFakeAuthService())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/auth/callback?code=code-1&state=state-1", nil)
	r.AddCookie(&http.Cookie{Name: stateCookieName, Value: "something-else"})
	h.SSOCallback(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_state", decodeBody(t, w)["error"])
}

func TestAuthHandlers_SSOCallback_MissingParams(t *testing.T) {
	h := newAuthHandlers(newFakeAuthService())

	w := httptest.NewRecorder()
	h.SSOCallback(w, httptest.NewRequest(http.MethodGet, "/auth/callback?state=s", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.SSOCallback(w, httptest.NewRequest(http.MethodGet, "/auth/callback?code=c", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlers_Logout(t *testing.T) {
	svc := newFakeAuthService()
	svc.sessions["sess-admin"] = adminSession()
	h := newAuthHandlers(svc)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-admin"})
	h.Logout(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"sess-admin"}, svc.loggedOut)

	cleared := findCookie(t, w, sessionCookieName)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestAuthHandlers_Logout_NoCookie(t *testing.T) {
	svc := newFakeAuthService()
	h := newAuthHandlers(svc)

	w := httptest.NewRecorder()
	h.Logout(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.loggedOut)
}

func TestAuthHandlers_CheckAuth(t *testing.T) {
	svc := newFakeAuthService()
	svc.sessions["sess-admin"] = adminSession()
	h := newAuthHandlers(svc)

	t.Run("valid session returns user", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/auth/check-auth", nil)
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-admin"})
		h.CheckAuth(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		user, ok := decodeBody(t, w)["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "ada.ops@example.com", user["email"])
	})

	t.Run("missing cookie returns 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.CheckAuth(w, httptest.NewRequest(http.MethodGet, "/api/auth/check-auth", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown session returns 401 and clears cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/auth/check-auth", nil)
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "gone"})
		h.CheckAuth(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		cleared := findCookie(t, w, sessionCookieName)
		require.NotNil(t, cleared)
		assert.Negative(t, cleared.MaxAge)
	})
}

func TestAuthHandlers_Status(t *testing.T) {
	svc := newFakeAuthService()
	session := adminSession()
	session.ExpiresAt = time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	svc.sessions["sess-admin"] = session
	h := newAuthHandlers(svc)

	t.Run("authenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-admin"})
		h.Status(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["authenticated"])
		assert.NotNil(t, body["user"])
	})

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Status(w, httptest.NewRequest(http.MethodGet, "/api/auth/status", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["authenticated"])
	})
}

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/benefits", "/benefits"},
		{"/benefits?page=2", "/benefits?page=2"},
		{"https://evil.example.com/", "/"},
		{"//evil.example.com", "/"},
		{"benefits", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, safeRedirectPath(tt.in))
		})
	}
}

func TestGuardPolicyDomain(t *testing.T) {
	// A sanity check that the context round trip preserves the session value.
	session := employeeSession(domainauth.HrThree)
	ctx := SetSessionInContext(httptest.NewRequest(http.MethodGet, "/", nil).Context(), session)

	got, ok := GetUserSessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, session, got)
}
