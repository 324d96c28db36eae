package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chess-arbiter"

// DataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/chess-arbiter/
// - Linux: $XDG_DATA_HOME/chess-arbiter/ or ~/.local/share/chess-arbiter/
// - Windows: %APPDATA%/chess-arbiter/
func DataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	return filepath.Join(baseDir, appName), nil
}

// DefaultDir returns the directory the game database lives in by default.
// It does not create the directory; Open does that.
func DefaultDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "db"), nil
}
