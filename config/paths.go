package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// getConfigDir returns the configuration directory for winassocguard.
func getConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "winassocguard")
}

// getDataDir returns the data directory for winassocguard.
// This follows XDG on Linux, Application Support on macOS, and LocalAppData on Windows.
func getDataDir() string {
	switch runtime.GOOS {
	case "linux":
		// Follow XDG Base Directory Specification
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, "winassocguard")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "winassocguard")

	case "darwin":
		// macOS: Use Application Support (same as config)
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "winassocguard")

	case "windows":
		// Windows: Use LocalAppData
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "winassocguard")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "AppData", "Local", "winassocguard")

	default:
		// Fallback: use config directory
		return getConfigDir()
	}
}

