package buildCFG

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/config"
)

type ServerConfig struct {
	Port string
}

type BackendConfig struct {
	BaseURL string
}

type AuthConfig struct {
	JWTSecret string
}

func BuildServerConfig(cfg *config.Config, log *zerolog.Logger) *ServerConfig {
	port := cfg.GetString("server.port")
	if port == "" {
		port = "8080"
		log.Warn().Msg("server.port not set, defaulting to 8080")
	}
	return &ServerConfig{Port: port}
}

func BuildBackendConfig(cfg *config.Config, log *zerolog.Logger) (*BackendConfig, error) {
	baseURL := cfg.GetString("backend.base_url")
	if baseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required")
	}
	log.Info().Str("base_url", baseURL).Msg("backend API configured")
	return &BackendConfig{BaseURL: baseURL}, nil
}

// BuildAuthConfig loads the identity-provider signing key. A missing key is
// a startup error: serving the dashboard without it would render a broken UI.
func BuildAuthConfig(cfg *config.Config, log *zerolog.Logger) (*AuthConfig, error) {
	secret := cfg.GetString("auth.jwt_secret")
	if secret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}
	return &AuthConfig{JWTSecret: secret}, nil
}
