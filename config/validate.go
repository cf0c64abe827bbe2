package config

import (
	"fmt"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

// validate checks the configuration for errors.
// Extensions are expected to be normalized before validation.
func validate(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Extensions))
	for i, ext := range cfg.Extensions {
		if !assoc.Extension(ext.Ext).Valid() {
			return fmt.Errorf("extensions[%d]: invalid extension %q", i, ext.Ext)
		}
		if ext.Handler == "" {
			return fmt.Errorf("extensions[%d]: handler must not be empty for %s", i, ext.Ext)
		}
		if seen[ext.Ext] {
			return fmt.Errorf("extensions[%d]: duplicate extension %s", i, ext.Ext)
		}
		seen[ext.Ext] = true
	}

	if cfg.Storage.RetentionDays < 0 {
		return fmt.Errorf("storage.retention_days must be non-negative")
	}

	if !isValidColorMode(cfg.Display.Colors) {
		return fmt.Errorf("invalid display.colors: %s (must be auto, always, or never)", cfg.Display.Colors)
	}

	if !isValidTimezoneMode(cfg.Display.Timezone) {
		return fmt.Errorf("invalid display.timezone: %s (must be local or utc)", cfg.Display.Timezone)
	}

	return nil
}

// isValidColorMode returns true if the given mode is valid.
func isValidColorMode(mode ColorMode) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// isValidTimezoneMode returns true if the given mode is valid.
func isValidTimezoneMode(mode TimezoneMode) bool {
	switch mode {
	case TimezoneLocal, TimezoneUTC:
		return true
	default:
		return false
	}
}
