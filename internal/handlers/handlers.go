package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/Billy-Davies-2/pokedex-ui/internal/auth"
	"github.com/Billy-Davies-2/pokedex-ui/internal/logger"
	"github.com/Billy-Davies-2/pokedex-ui/internal/models"
	"github.com/Billy-Davies-2/pokedex-ui/internal/repository"
)

// APIHandlers contains all API handler methods.
type APIHandlers struct {
	repo     *repository.PokemonRepository
	provider auth.Provider
	decoder  *schema.Decoder
	validate *validator.Validate
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(repo *repository.PokemonRepository, provider auth.Provider) *APIHandlers {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &APIHandlers{
		repo:     repo,
		provider: provider,
		decoder:  decoder,
		validate: validator.New(),
	}
}

// listQuery is the decoded /pokemons query string.
type listQuery struct {
	Search string `schema:"search" validate:"omitempty,max=100"`
	Page   int    `schema:"page" validate:"omitempty,min=1"`
	Limit  int    `schema:"limit" validate:"omitempty,min=1,max=100"`
}

// ListPokemons serves GET /pokemons: a translated upstream page, or a
// single-shot search when the search parameter is present. Both branches
// answer 200 with the paged envelope; a search miss is an empty success.
func (h *APIHandlers) ListPokemons(w http.ResponseWriter, r *http.Request) {
	query := h.decodeListQuery(r)

	var (
		result models.PagedResponse
		err    error
	)
	if query.Search != "" {
		result, err = h.repo.Search(r.Context(), query.Search)
	} else {
		result, err = h.repo.FindAll(r.Context(), query.Page, query.Limit)
	}
	if err != nil {
		logger.Error("Failed to list pokemons", "error", err, "search", query.Search, "page", query.Page)
		h.writeError(w, http.StatusInternalServerError, "Error loading pokemons")
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// GetPokemon serves GET /pokemons/{id}, where {id} may be a numeric id or a
// name.
func (h *APIHandlers) GetPokemon(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Pokemon not found")
			return
		}
		logger.Error("Failed to get pokemon", "error", err, "id", id)
		h.writeError(w, http.StatusInternalServerError, "Error loading pokemon")
		return
	}

	h.writeJSON(w, http.StatusOK, detail)
}

// Login serves POST /login. The response never distinguishes a bad username
// from a bad password.
func (h *APIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode login request", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.provider.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			logger.Error("Login provider failure", "error", err)
		}
		h.writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	logger.Info("User logged in", "username", result.Username)
	h.writeJSON(w, http.StatusOK, models.LoginResponse{
		Message: result.Message,
		Token:   result.Token,
		User:    models.User{Username: result.Username},
	})
}

// Health serves GET /api/health with a dependency report.
func (h *APIHandlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := "ok"
	httpStatus := http.StatusOK
	checks := map[string]string{}

	if err := h.repo.Ping(ctx); err != nil {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
		checks["upstream"] = "unhealthy"
		logger.Warn("Health check: upstream unreachable", "error", err)
	} else {
		checks["upstream"] = "healthy"
	}

	h.writeJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().Unix(),
		"checks":    checks,
	})
}

// Liveness serves GET /healthz; it only reports that the process is up.
func (h *APIHandlers) Liveness(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "alive",
		"timestamp": time.Now().Unix(),
	})
}

// Readiness serves GET /readyz; the proxy is ready when the upstream answers.
func (h *APIHandlers) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.Ping(ctx); err != nil {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "not_ready",
			"reason":    "upstream_unavailable",
			"timestamp": time.Now().Unix(),
		})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ready",
		"timestamp": time.Now().Unix(),
	})
}

// decodeListQuery decodes and validates the list query. Malformed or
// out-of-range values fall back to defaults rather than erroring, keeping
// the always-200 contract of the listing endpoint.
func (h *APIHandlers) decodeListQuery(r *http.Request) listQuery {
	var query listQuery
	if err := h.decoder.Decode(&query, r.URL.Query()); err != nil {
		logger.Warn("Ignoring malformed list query", "error", err, "query", r.URL.RawQuery)
		return listQuery{Page: repository.DefaultPage, Limit: repository.DefaultLimit}
	}
	if err := h.validate.Struct(query); err != nil {
		logger.Warn("Ignoring out-of-range list query", "error", err, "query", r.URL.RawQuery)
		return listQuery{Page: repository.DefaultPage, Limit: repository.DefaultLimit}
	}
	if query.Page == 0 {
		query.Page = repository.DefaultPage
	}
	if query.Limit == 0 {
		query.Limit = repository.DefaultLimit
	}
	return query
}

func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func (h *APIHandlers) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, models.ErrorResponse{Error: msg})
}
