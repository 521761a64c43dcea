package config

import (
	"log/slog"
	"os"
	"strings"
)

// Environment variables read by Load.
const (
	EnvLogLevel = "JOURNEY2MD_LOG_LEVEL"
	EnvLogFile  = "JOURNEY2MD_LOG_FILE"
)

// Config holds the settings that are not command-line arguments.
type Config struct {
	// LogFile receives JSON logs in addition to stderr. Empty disables it.
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		LogFile:  os.Getenv(EnvLogFile),
		LogLevel: parseLogLevel(getEnv(EnvLogLevel, "WARN")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
