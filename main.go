package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Billy-Davies-2/pokedex-ui/internal/auth"
	"github.com/Billy-Davies-2/pokedex-ui/internal/config"
	"github.com/Billy-Davies-2/pokedex-ui/internal/handlers"
	"github.com/Billy-Davies-2/pokedex-ui/internal/logger"
	"github.com/Billy-Davies-2/pokedex-ui/internal/repository"
	"github.com/Billy-Davies-2/pokedex-ui/internal/upstream"
)

func main() {
	cfg := config.Load()

	// Initialize logger first
	logger.Init(cfg.LogLevel)
	logger.Info("Starting Pokedex listing service")

	// Upstream provider client
	client := upstream.NewHTTPClient(cfg.UpstreamURL)
	if cfg.UpstreamURL == "" {
		logger.Info("Using public PokeAPI upstream", "url", upstream.DefaultBaseURL)
	} else {
		logger.Info("Using configured upstream", "url", cfg.UpstreamURL)
	}

	repo := repository.New(client)

	// Credential provider: mock static check by default, OAuth2 password
	// grant when configured.
	var provider auth.Provider
	switch cfg.AuthProvider {
	case config.AuthProviderStatic:
		provider = auth.NewStaticProvider()
		logger.Info("Using static mock credentials")
	case config.AuthProviderOAuth2:
		if cfg.OAuthTokenURL == "" || cfg.OAuthClientID == "" {
			logger.Error("OAUTH_TOKEN_URL and OAUTH_CLIENT_ID are required for the oauth2 provider")
			log.Fatal("OAUTH_TOKEN_URL and OAUTH_CLIENT_ID are required for the oauth2 provider")
		}
		provider = auth.NewOAuthProvider(&auth.OAuthConfig{
			TokenURL:     cfg.OAuthTokenURL,
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
		})
		logger.Info("Using OAuth2 credential provider", "token_url", cfg.OAuthTokenURL)
	default:
		logger.Error("Unknown AUTH_PROVIDER", "provider", cfg.AuthProvider)
		log.Fatalf("Unknown AUTH_PROVIDER: %s (valid: static, oauth2)", cfg.AuthProvider)
	}

	api := handlers.NewAPIHandlers(repo, provider)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/pokemons", api.ListPokemons)
	r.Get("/pokemons/{id}", api.GetPokemon)
	r.Post("/login", api.Login)

	// Health check endpoints
	r.Get("/api/health", api.Health)
	r.Get("/healthz", api.Liveness)
	r.Get("/readyz", api.Readiness)

	addr := "0.0.0.0:" + cfg.Port
	logger.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("Server failed", "error", err)
		log.Fatal(err)
	}
}
