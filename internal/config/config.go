// Package config gathers the server's environment configuration in one
// place. Every value has a default so a bare `go run .` works locally.
package config

import (
	"os"
	"strings"
)

// Auth provider selectors for AUTH_PROVIDER.
const (
	AuthProviderStatic = "static"
	AuthProviderOAuth2 = "oauth2"
)

// EnvConfig is the resolved server configuration.
type EnvConfig struct {
	Port        string
	LogLevel    string
	UpstreamURL string
	CORSOrigins []string

	AuthProvider      string
	OAuthTokenURL     string
	OAuthClientID     string
	OAuthClientSecret string
}

// Load reads configuration from the environment, applying defaults.
func Load() EnvConfig {
	cfg := EnvConfig{
		Port:              getenv("PORT", "3000"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		UpstreamURL:       os.Getenv("UPSTREAM_URL"),
		AuthProvider:      getenv("AUTH_PROVIDER", AuthProviderStatic),
		OAuthTokenURL:     os.Getenv("OAUTH_TOKEN_URL"),
		OAuthClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		OAuthClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
	}

	origins := getenv("CORS_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
