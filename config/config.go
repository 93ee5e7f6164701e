package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// defaultAllowedOrigins is the built-in CORS allow-list used when
// ALLOWED_ORIGINS is unset or empty. It covers the production frontends and
// the usual local dev servers.
var defaultAllowedOrigins = []string{
	"https://laxmibeekeeping.com.np",
	"https://www.laxmibeekeeping.com.np",
	"http://localhost:3000",
	"http://localhost:5173",
}

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Services ServicesConfig
	Database DatabaseConfig
	Redis    RedisConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type ServicesConfig struct {
	// Enabled is the raw ENABLED_SERVICES value. Empty means "use each
	// service's default flag"; resolution happens in the registry.
	Enabled string
}

type DatabaseConfig struct {
	// DSN for the mindshipping user store. Optional: when empty the
	// service still mounts and only its database-backed routes degrade.
	DSN string
}

type RedisConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	URL      string
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() *Config {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		CORS: CORSConfig{
			AllowedOrigins: ParseAllowedOrigins(os.Getenv("ALLOWED_ORIGINS")),
		},
		Services: ServicesConfig{
			Enabled: os.Getenv("ENABLED_SERVICES"),
		},
		Database: DatabaseConfig{
			DSN: getEnv("MINDSHIPPING_DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Username: getEnv("REDIS_USERNAME", "default"),
			Password: getEnv("REDIS_PASSWORD", ""),
			URL:      getEnv("REDIS_URL", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}
}

// ParseAllowedOrigins splits a comma-separated origin list, trimming entries
// and dropping empties. An empty result falls back to the built-in defaults,
// so the effective allow-list is never empty.
func ParseAllowedOrigins(raw string) []string {
	origins := splitAndTrim(raw)
	if len(origins) == 0 {
		return append([]string(nil), defaultAllowedOrigins...)
	}
	return origins
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
