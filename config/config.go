package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"ideaboard/utils"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port              string         `yaml:"port"`
	GinMode           string         `yaml:"gin_mode"`
	Database          DatabaseConfig `yaml:"database"`
	RedisURL          string         `yaml:"redis_url"`
	JWTSecretKey      string         `yaml:"jwt_secret_key"`
	JWTExpirationTime time.Duration  `yaml:"jwt_expiration_time"`
	SessionDuration   time.Duration  `yaml:"session_duration"`
	SessionIdleLimit  time.Duration  `yaml:"session_idle_limit"`
	MaxActiveSessions int            `yaml:"max_active_sessions"`
	SecureCookies     bool           `yaml:"secure_cookies"`
	CORSOrigins       []string       `yaml:"cors_origins"`
	MaxBodyBytes      int64          `yaml:"max_body_bytes"`
}

func defaults() *Config {
	return &Config{
		Port:              "8080",
		GinMode:           "release",
		Database:          defaultDatabaseConfig(),
		JWTExpirationTime: time.Hour,
		SessionDuration:   24 * time.Hour,
		SessionIdleLimit:  48 * time.Hour,
		MaxActiveSessions: 5,
		SecureCookies:     true,
		CORSOrigins:       []string{"http://localhost:3000"},
		MaxBodyBytes:      1 << 20,
	}
}

// Load builds the configuration in three layers: built-in defaults, the YAML
// file named by CONFIG_FILE (if any) and finally environment variables, which
// may come from a .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.Port = utils.GetEnvAsString("PORT", cfg.Port)
	cfg.GinMode = utils.GetEnvAsString("GIN_MODE", cfg.GinMode)
	cfg.Database = cfg.Database.withEnv()
	cfg.RedisURL = utils.GetEnvAsString("REDIS_URL", cfg.RedisURL)
	cfg.JWTSecretKey = utils.GetEnvAsString("JWT_SECRET_KEY", cfg.JWTSecretKey)
	cfg.JWTExpirationTime = utils.GetEnvAsDuration("JWT_EXPIRATION_TIME", cfg.JWTExpirationTime)
	cfg.SessionDuration = utils.GetEnvAsDuration("SESSION_DURATION", cfg.SessionDuration)
	cfg.SessionIdleLimit = utils.GetEnvAsDuration("SESSION_IDLE_LIMIT", cfg.SessionIdleLimit)
	cfg.MaxActiveSessions = utils.GetEnvAsInt("MAX_ACTIVE_SESSIONS", cfg.MaxActiveSessions)
	cfg.SecureCookies = utils.GetEnvAsBool("SECURE_COOKIES", cfg.SecureCookies)
	cfg.CORSOrigins = utils.GetEnvAsStringSlice("CORS_ORIGINS", cfg.CORSOrigins)
	cfg.MaxBodyBytes = utils.GetEnvAsInt64("MAX_BODY_BYTES", cfg.MaxBodyBytes)

	if os.Getenv("GO_ENV") == "test" && cfg.JWTSecretKey == "" {
		cfg.JWTSecretKey = "test_secret_key"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return fmt.Errorf("required setting JWT_SECRET_KEY is not set")
	}
	if c.Database.URI == "" {
		return fmt.Errorf("required setting MONGO_URI is not set")
	}
	if c.MaxActiveSessions < 1 {
		return fmt.Errorf("MAX_ACTIVE_SESSIONS must be at least 1, got %d", c.MaxActiveSessions)
	}
	return nil
}
