// Package config loads the process configuration from environment
// variables. Every value ends up in an explicit struct handed to the
// constructors that need it; nothing here is consulted after startup.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type ServerConfig struct {
	Port string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func (c DBConfig) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type Config struct {
	Server       ServerConfig
	Auth         AuthConfig
	DB           DBConfig
	StoreBackend string
}

// Load reads all configuration, collecting every problem so a broken
// environment reports all missing values at once.
func Load() (*Config, error) {
	var errs []string

	cfg := &Config{
		Server: ServerConfig{
			Port: optionalEnv("PORT", "8080"),
		},
		Auth: AuthConfig{
			JWTSecret: requiredEnv("JWT_SECRET", &errs),
			TokenTTL:  durationEnv("JWT_EXPIRES_IN", 24*time.Hour, &errs),
		},
		StoreBackend: optionalEnv("STORE_BACKEND", BackendPostgres),
	}

	if cfg.StoreBackend != BackendPostgres && cfg.StoreBackend != BackendMemory {
		errs = append(errs, fmt.Sprintf("invalid STORE_BACKEND %q: expected %q or %q",
			cfg.StoreBackend, BackendPostgres, BackendMemory))
	}

	if cfg.StoreBackend == BackendPostgres {
		cfg.DB = DBConfig{
			Host:     optionalEnv("POSTGRES_HOST", "localhost"),
			Port:     optionalEnv("POSTGRES_PORT", "5432"),
			User:     requiredEnv("POSTGRES_USER", &errs),
			Password: requiredEnv("POSTGRES_PASSWORD", &errs),
			Name:     requiredEnv("POSTGRES_DB", &errs),
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}
	return cfg, nil
}

func requiredEnv(key string, errs *[]string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		*errs = append(*errs, "missing required environment variable: "+key)
		return ""
	}
	return value
}

func optionalEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func durationEnv(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration, got %q", key, value))
		return defaultValue
	}
	return d
}
