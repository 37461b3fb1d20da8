package configs

import (
	"os"

	"github.com/joho/godotenv"

	"rsvp.link/configs/configslog"
)

// Backend identifies which Store implementation the process runs on.
// The choice is made once at startup and never changes per request.
type Backend string

const (
	BackendCSV      Backend = "csv"
	BackendPostgres Backend = "postgres"
)

// Config holds all environment-driven settings.
type Config struct {
	AppEnv         string
	Port           string
	DataDir        string
	DatabaseURL    string
	SessionSecret  string
	AdminFirstName string
	AdminLastName  string
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info("No .env file found, using process environment")
	}

	return &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "5000"),
		DataDir:        getEnv("DATA_DIR", "data"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SessionSecret:  getEnv("SESSION_SECRET", ""),
		AdminFirstName: getEnv("ADMIN_FIRST_NAME", "Admin"),
		AdminLastName:  getEnv("ADMIN_LAST_NAME", "User"),
	}
}

// SelectedBackend applies the production switch: Postgres only when a
// DATABASE_URL is configured and the app runs in production, CSV otherwise.
func (c *Config) SelectedBackend() Backend {
	if c.AppEnv == "production" && c.DatabaseURL != "" {
		return BackendPostgres
	}
	return BackendCSV
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
