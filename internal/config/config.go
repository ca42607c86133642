package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DataSourceLive re-reads and re-converts the source workbook on
// every request. DataSourceSnapshot loads the precomputed JSON
// snapshot once at startup and serves from memory.
const (
	DataSourceLive     = "live"
	DataSourceSnapshot = "snapshot"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string
	// DataDir holds the per-qualification timetable workbooks.
	DataDir string
	// SnapshotPath is where the converter writes (and the snapshot
	// data source reads) the precomputed exam data JSON.
	SnapshotPath string
	// DataSource selects between "live" and "snapshot".
	DataSource string
	// AllowedOrigins controls HTTP CORS. Empty slice means all
	// origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	dataDir := getEnv("DATA_DIR", "./data")

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "3001"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		DataDir:        dataDir,
		SnapshotPath:   getEnv("SNAPSHOT_PATH", filepath.Join(dataDir, "exam-data.json")),
		DataSource:     getEnv("DATA_SOURCE", DataSourceLive),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
