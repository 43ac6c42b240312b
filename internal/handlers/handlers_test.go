package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Billy-Davies-2/pokedex-ui/internal/auth"
	"github.com/Billy-Davies-2/pokedex-ui/internal/mocks"
	"github.com/Billy-Davies-2/pokedex-ui/internal/repository"
	"github.com/Billy-Davies-2/pokedex-ui/internal/upstream"
)

func newTestRouter(client upstream.Client) http.Handler {
	h := NewAPIHandlers(repository.New(client), auth.NewStaticProvider())

	r := chi.NewRouter()
	r.Get("/pokemons", h.ListPokemons)
	r.Get("/pokemons/{id}", h.GetPokemon)
	r.Post("/login", h.Login)
	r.Get("/api/health", h.Health)
	r.Get("/healthz", h.Liveness)
	r.Get("/readyz", h.Readiness)
	return r
}

func doRequest(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestListPokemonsDefaultPage(t *testing.T) {
	rec := doRequest(t, newTestRouter(&mocks.UpstreamClient{}), http.MethodGet, "/pokemons", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Data []map[string]any `json:"data"`
		Meta map[string]any   `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 20)
	assert.EqualValues(t, 1302, body.Meta["total_count"])
	assert.EqualValues(t, 66, body.Meta["total_pages"])
	assert.EqualValues(t, 1, body.Meta["current_page"])
}

func TestListPokemonsExplicitPaging(t *testing.T) {
	var gotLimit, gotOffset int
	client := &mocks.UpstreamClient{
		ListPokemonFunc: func(ctx context.Context, limit, offset int) (*upstream.ListPage, error) {
			gotLimit, gotOffset = limit, offset
			return mocks.ListPageFixture(limit, offset, 1302), nil
		},
	}

	rec := doRequest(t, newTestRouter(client), http.MethodGet, "/pokemons?page=4&limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 30, gotOffset)
}

func TestListPokemonsOutOfRangeQueryFallsBackToDefaults(t *testing.T) {
	var gotLimit, gotOffset int
	client := &mocks.UpstreamClient{
		ListPokemonFunc: func(ctx context.Context, limit, offset int) (*upstream.ListPage, error) {
			gotLimit, gotOffset = limit, offset
			return mocks.ListPageFixture(limit, offset, 1302), nil
		},
	}

	rec := doRequest(t, newTestRouter(client), http.MethodGet, "/pokemons?page=0&limit=5000", "")

	require.Equal(t, http.StatusOK, rec.Code, "listing stays 200 on bad query values")
	assert.Equal(t, 20, gotLimit)
	assert.Equal(t, 0, gotOffset)
}

func TestListPokemonsUpstreamDownReturnsSentinel(t *testing.T) {
	client := &mocks.UpstreamClient{
		ListPokemonFunc: func(ctx context.Context, limit, offset int) (*upstream.ListPage, error) {
			return nil, &upstream.StatusError{Code: 503, URL: "/pokemon"}
		},
	}

	rec := doRequest(t, newTestRouter(client), http.MethodGet, "/pokemons", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"meta":{}}`, rec.Body.String())
}

func TestListPokemonsSearchHit(t *testing.T) {
	rec := doRequest(t, newTestRouter(&mocks.UpstreamClient{}), http.MethodGet, "/pokemons?search=Bulbasaur", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []map[string]any `json:"data"`
		Meta map[string]any   `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "bulbasaur", body.Data[0]["name"])
	assert.EqualValues(t, 1, body.Meta["total_count"])
}

func TestListPokemonsSearchMissIsEmptySuccess(t *testing.T) {
	rec := doRequest(t, newTestRouter(&mocks.UpstreamClient{}), http.MethodGet, "/pokemons?search=missingno", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"data":[],"meta":{"total_count":0,"total_pages":0,"current_page":1}}`,
		rec.Body.String())
}

func TestGetPokemonFound(t *testing.T) {
	rec := doRequest(t, newTestRouter(&mocks.UpstreamClient{}), http.MethodGet, "/pokemons/bulbasaur", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bulbasaur", body["name"])
	assert.Equal(t, 6.9, body["weight"])
	assert.Equal(t, 0.7, body["height"])
	stats, ok := body["stats"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 65, stats["special_attack"])
}

func TestGetPokemonNotFound(t *testing.T) {
	rec := doRequest(t, newTestRouter(&mocks.UpstreamClient{}), http.MethodGet, "/pokemons/99999", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Pokemon not found"}`, rec.Body.String())
}

func TestLoginSuccess(t *testing.T) {
	rec := doRequest(t, newTestRouter(&mocks.UpstreamClient{}), http.MethodPost, "/login",
		`{"username":"admin","password":"admin"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "Login successful",
		"token": "mock-secure-token-12345",
		"user": {"username": "admin"}
	}`, rec.Body.String())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	cases := []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"someone","password":"admin"}`,
		`{"username":"","password":""}`,
	}
	for _, body := range cases {
		rec := doRequest(t, newTestRouter(&mocks.UpstreamClient{}), http.MethodPost, "/login", body)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "body=%s", body)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	rec := doRequest(t, newTestRouter(&mocks.UpstreamClient{}), http.MethodPost, "/login", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
}

func TestHealthReportsUpstreamState(t *testing.T) {
	rec := doRequest(t, newTestRouter(&mocks.UpstreamClient{}), http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	down := &mocks.UpstreamClient{
		ListPokemonFunc: func(ctx context.Context, limit, offset int) (*upstream.ListPage, error) {
			return nil, &upstream.StatusError{Code: 500, URL: "/pokemon"}
		},
	}
	rec = doRequest(t, newTestRouter(down), http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "unhealthy", body.Checks["upstream"])
}

func TestLivenessAlwaysOK(t *testing.T) {
	down := &mocks.UpstreamClient{
		ListPokemonFunc: func(ctx context.Context, limit, offset int) (*upstream.ListPage, error) {
			return nil, &upstream.StatusError{Code: 500, URL: "/pokemon"}
		},
	}
	rec := doRequest(t, newTestRouter(down), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadinessTracksUpstream(t *testing.T) {
	rec := doRequest(t, newTestRouter(&mocks.UpstreamClient{}), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	down := &mocks.UpstreamClient{
		ListPokemonFunc: func(ctx context.Context, limit, offset int) (*upstream.ListPage, error) {
			return nil, &upstream.StatusError{Code: 500, URL: "/pokemon"}
		},
	}
	rec = doRequest(t, newTestRouter(down), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
