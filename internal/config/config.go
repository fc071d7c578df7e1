package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default upstream endpoints and models for the known providers.
const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel   = "gemini-pro"
	DefaultGrokBaseURL   = "https://api.x.ai/v1"
	DefaultGrokModel     = "grok-beta"
)

// Config holds application configuration loaded from environment and file.
// Priority: Env vars → config.toml → defaults
type Config struct {
	// ServerPort is the address to bind the server to (e.g., ":8080")
	ServerPort string

	// EnableWebUI serves the browser client at /
	EnableWebUI bool

	// WebRoot optionally points at a directory with a hand-authored index.html
	WebRoot string

	// LogLevel is one of debug, info, warn, error
	LogLevel slog.Level

	// UpstreamTimeout bounds a single outbound provider call
	UpstreamTimeout time.Duration

	// Providers holds per-provider endpoint settings keyed by provider id
	Providers map[string]ProviderSettings

	// Credentials resolves provider API keys at invocation time
	Credentials CredentialSource
}

// ProviderSettings configures the outbound endpoint of one provider.
type ProviderSettings struct {
	BaseURL string
	Model   string
}

// Load reads configuration from .env, the config file and environment variables.
// Environment variables override file config values.
func Load() *Config {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	fileConfig, err := LoadFile()
	if err != nil {
		slog.Warn("ignoring unreadable config file", "path", ConfigPath(), "error", err)
		fileConfig = &FileConfig{}
	}

	return &Config{
		ServerPort:      getEnvOrFile("SERVER_PORT", fileConfig.ServerPort, ":8080"),
		EnableWebUI:     getEnvBoolOrFile("ENABLE_WEB_UI", fileConfig.EnableWebUI, true),
		WebRoot:         getEnvOrFile("WEB_ROOT", fileConfig.WebRoot, ""),
		LogLevel:        parseLevel(getEnvOrFile("LOG_LEVEL", fileConfig.LogLevel, "info")),
		UpstreamTimeout: parseDuration(getEnvOrFile("UPSTREAM_TIMEOUT", fileConfig.UpstreamTimeout, ""), 60*time.Second),
		Providers:       providerSettings(fileConfig.Providers),
		Credentials:     EnvCredentials{},
	}
}

// providerSettings merges file overrides onto the built-in provider defaults.
func providerSettings(file map[string]FileProvider) map[string]ProviderSettings {
	settings := map[string]ProviderSettings{
		"gemini": {BaseURL: DefaultGeminiBaseURL, Model: DefaultGeminiModel},
		"grok":   {BaseURL: DefaultGrokBaseURL, Model: DefaultGrokModel},
	}
	for id, fp := range file {
		s := settings[id]
		if fp.BaseURL != "" {
			s.BaseURL = fp.BaseURL
		}
		if fp.Model != "" {
			s.Model = fp.Model
		}
		settings[id] = s
	}
	return settings
}

// getEnvOrFile returns env value, file value, or default (in priority order)
func getEnvOrFile(key, fileValue, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

// getEnvBoolOrFile returns env bool, file bool, or default (in priority order)
func getEnvBoolOrFile(key string, fileValue *bool, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
