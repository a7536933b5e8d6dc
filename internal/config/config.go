package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	MistralAPIKey string
	MistralModel  string
	LLMTimeout    time.Duration

	RequireAPIKey bool

	AdminSecret      string
	AdminTokenExpiry time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	llmTimeout, err := time.ParseDuration(getEnv("LLM_TIMEOUT", "60s"))
	if err != nil {
		llmTimeout = 60 * time.Second
	}

	adminTokenExpiry, err := time.ParseDuration(getEnv("ADMIN_TOKEN_EXPIRY", "15m"))
	if err != nil {
		adminTokenExpiry = 15 * time.Minute
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		MistralAPIKey: getEnvOrPanic("MISTRAL_API_KEY"),
		MistralModel:  getEnv("MISTRAL_MODEL", "mistral-large-latest"),
		LLMTimeout:    llmTimeout,

		RequireAPIKey: getEnvBool("REQUIRE_API_KEY", true),

		AdminSecret:      getEnv("ADMIN_SECRET", ""),
		AdminTokenExpiry: adminTokenExpiry,
	}, nil
}

// LoadDatabase reads only the settings needed to reach the store, for
// tooling that never talks to the provider.
func LoadDatabase() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AdminEnabled reports whether the admin API should be mounted.
func (c *Config) AdminEnabled() bool {
	return c.AdminSecret != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
