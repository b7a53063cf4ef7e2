// Package config loads the application configuration from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full application configuration. Values come from environment
// variables; a local .env file is loaded by main before processing.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// Upstox API. The access token is supplied externally; the service never
	// refreshes it.
	UpstoxAccessToken    string        `envconfig:"UPSTOX_ACCESS_TOKEN"`
	UpstoxBaseURL        string        `envconfig:"UPSTOX_BASE_URL" default:"https://api.upstox.com"`
	UpstoxInstrumentsURL string        `envconfig:"UPSTOX_INSTRUMENTS_URL" default:"https://assets.upstox.com/market-quote/instruments/exchange/NSE.json.gz"`
	HTTPTimeout          time.Duration `envconfig:"HTTP_TIMEOUT" default:"20s"`
	APIRateLimit         int           `envconfig:"API_RATE_LIMIT" default:"250"` // calls per minute

	// MySQL
	DBUser        string `envconfig:"DB_USER"`
	DBPassword    string `envconfig:"DB_PASSWORD"`
	DBHost        string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort        string `envconfig:"DB_PORT" default:"3306"`
	DBName        string `envconfig:"DB_NAME" default:"fno_analyzer"`
	RunMigrations bool   `envconfig:"RUN_MIGRATIONS" default:"true"`

	// Redis (optional; the service runs without it)
	RedisHost     string `envconfig:"REDIS_HOST"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
}

// Load processes the environment into a Config.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
