package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all settings, populated from environment variables.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB" envDefault:"rentWheelsDB"`

	// Token issuer settings. The JWKS endpoint is the only hard requirement;
	// issuer and audience checks are enforced only when set.
	AuthJWKSURL  string `env:"AUTH_JWKS_URL,required,notEmpty"`
	AuthIssuer   string `env:"AUTH_ISSUER"`
	AuthAudience string `env:"AUTH_AUDIENCE"`
}

// Load reads a .env file if present, then parses the environment.
func Load() (Config, error) {
	// Missing .env is fine, real environments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
