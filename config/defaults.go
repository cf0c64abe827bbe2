package config

import (
	"github.com/spf13/viper"
)

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	// Guard defaults
	v.SetDefault("guard.enabled", true)
	v.SetDefault("guard.auto_restore", true)
	v.SetDefault("guard.interval", "3s")
	v.SetDefault("guard.notifications", true)

	// Baseline defaults
	v.SetDefault("extensions", []ExtensionConfig{})

	// Storage defaults
	v.SetDefault("storage.path", "") // Empty means use platform default
	v.SetDefault("storage.retention_days", 90)

	// Display defaults
	v.SetDefault("display.colors", "auto")
	v.SetDefault("display.timezone", "local")
}
