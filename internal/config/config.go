package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Run modes of the process.
const (
	ModeCheck = "check"
	ModeServe = "serve"
)

type Config struct {
	Mode      string
	Port      string
	LogLevel  slog.Level
	LogFormat string

	Check     *CheckConfig
	Detection *DetectionConfig
	Mail      *MailConfig
	Templates *TemplateConfig
}

func Load() (*Config, error) {
	mode := os.Getenv("RUN_MODE")
	if mode == "" {
		mode = ModeCheck
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mailConfig, err := LoadMailConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Mode:      mode,
		Port:      port,
		LogLevel:  parseLogLevel(os.Getenv("LOG_LEVEL")),
		LogFormat: os.Getenv("LOG_FORMAT"),
		Check:     LoadCheckConfig(),
		Detection: LoadDetectionConfig(),
		Mail:      mailConfig,
		Templates: LoadTemplateConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}
