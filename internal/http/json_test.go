package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func decodeRequest(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	var dst loginPayload
	return w, DecodeJSON(w, r, &dst)
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		_, ok := decodeRequest(t, `{"email":"a@b.c","password":"secret12"}`)
		assert.True(t, ok)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		w, ok := decodeRequest(t, `{"email":"a@b.c","password":"secret12","admin":true}`)
		require.False(t, ok)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_json", decodeBody(t, w)["error"])
	})

	t.Run("trailing data rejected", func(t *testing.T) {
		w, ok := decodeRequest(t, `{"email":"a@b.c","password":"secret12"}{"email":"x"}`)
		require.False(t, ok)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_json", decodeBody(t, w)["error"])
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		huge := `{"email":"` + strings.Repeat("a", maxRequestBytes) + `"}`
		w, ok := decodeRequest(t, huge)
		require.False(t, ok)
		require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, "request_too_large", decodeBody(t, w)["error"])
	})
}

func TestWriteError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, ErrorParams{
		Code:    http.StatusConflict,
		ErrCode: "benefit_name_exists",
		Err:     errors.New("a benefit with this name already exists"),
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := decodeBody(t, w)
	assert.Equal(t, "benefit_name_exists", body["error"])
	assert.Equal(t, "a benefit with this name already exists", body["message"])
}
