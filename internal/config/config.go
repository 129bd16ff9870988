package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"resume-builder/pkg/infrastructure"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Port          string        `validate:"required,numeric"`
	Environment   string        `validate:"required"`
	LogLevel      string        `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Store         string        `validate:"required,oneof=postgres memory"`
	DatabaseURL   string        `validate:"required_if=Store postgres"`
	ChromePath    string
	ExportTimeout time.Duration `validate:"gt=0"`
	CorsOrigins   []string      `validate:"min=1,dive,required"`
}

var validate = validator.New()

// Load reads configuration from the environment, after loading ENV_FILE
// (default .env) when it exists.
func Load() (Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil {
		log.Debug().Str("file", envFile).Msg("no env file loaded")
	}

	timeout, err := time.ParseDuration(getEnv("EXPORT_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("EXPORT_TIMEOUT: %w", err)
	}

	cfg := Config{
		Port:          getEnv("PORT", "3000"),
		Environment:   getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Store:         getEnv("STORE", StorePostgres),
		DatabaseURL:   getEnv("DATABASE_URL", infrastructure.DefaultDatabaseURL),
		ChromePath:    getEnv("CHROME_PATH", ""),
		ExportTimeout: timeout,
		CorsOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
