package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(ClientOptions{})
	assert.Error(t, err)

	_, err = NewClient(ClientOptions{BaseURL: "not-a-url"})
	assert.Error(t, err)

	_, err = NewClient(ClientOptions{BaseURL: "https://hr.example.com"})
	assert.NoError(t, err)
}

func TestClient_FetchList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/benefit", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"benefits":[{"id":"b1","name":"Vision Plan"},{"id":"b2","name":"Dental Plan"}]}`))
	}))
	defer server.Close()

	c, err := NewClient(ClientOptions{BaseURL: server.URL})
	require.NoError(t, err)

	type benefit struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	items, err := FetchListAs[benefit](context.Background(), c, FetchListParams{
		Path: "/api/benefit",
		Expr: "benefits",
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Dental Plan", items[1].Name)
}

func TestClient_FetchList_BareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"p1"}]`))
	}))
	defer server.Close()

	c, err := NewClient(ClientOptions{BaseURL: server.URL})
	require.NoError(t, err)

	items, err := c.FetchList(context.Background(), FetchListParams{Path: "plans"})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestClient_FetchList_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c, err := NewClient(ClientOptions{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = c.FetchList(context.Background(), FetchListParams{Path: "/api/benefit"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestClient_FetchList_InvalidExpr(t *testing.T) {
	c, err := NewClient(ClientOptions{BaseURL: "https://hr.example.com"})
	require.NoError(t, err)

	_, err = c.FetchList(context.Background(), FetchListParams{Path: "/api/benefit", Expr: "benefits["})
	assert.Error(t, err)
}
