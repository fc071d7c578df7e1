package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file structure.
type FileConfig struct {
	ServerPort      string                  `toml:"server_port"`
	EnableWebUI     *bool                   `toml:"enable_web_ui"`
	WebRoot         string                  `toml:"web_root"`
	LogLevel        string                  `toml:"log_level"`
	UpstreamTimeout string                  `toml:"upstream_timeout"`
	Providers       map[string]FileProvider `toml:"providers"`
}

// FileProvider overrides the outbound endpoint of one provider.
type FileProvider struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

// ConfigPath returns the path to the config file. CLIPRELAY_CONFIG overrides
// the default location (~/.cliprelay/config.toml).
func ConfigPath() string {
	if p := os.Getenv("CLIPRELAY_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(DataDir(), "config.toml")
}

// LoadFile loads configuration from the TOML file.
// Returns an empty FileConfig if the file doesn't exist.
func LoadFile() (*FileConfig, error) {
	return decodeFile(ConfigPath())
}

func decodeFile(path string) (*FileConfig, error) {
	cfg := &FileConfig{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EnsureConfigFile creates a default config file with commented examples if none exists.
func EnsureConfigFile() error {
	path := ConfigPath()

	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	defaultConfig := `# cliprelay configuration
# server_port = ":8080"
# enable_web_ui = true
# web_root = ""           # directory with a custom index.html
# log_level = "info"
# upstream_timeout = "60s"

# API keys are never read from this file; export GEMINI_API_KEY / GROK_API_KEY.

# [providers.gemini]
# base_url = "https://generativelanguage.googleapis.com/v1beta"
# model = "gemini-pro"

# [providers.grok]
# base_url = "https://api.x.ai/v1"
# model = "grok-beta"
`

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
