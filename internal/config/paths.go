package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the path to the cliprelay data directory.
// - Windows: %APPDATA%\cliprelay
// - Other OS: ~/.cliprelay
func DataDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "cliprelay")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".cliprelay"
	}
	return filepath.Join(home, ".cliprelay")
}
