// Package config provides configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
	"github.com/sherlock-488/WinAssocGuard/core/baseline"
	"github.com/sherlock-488/WinAssocGuard/core/monitor"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	// ColorAuto automatically detects terminal support.
	ColorAuto ColorMode = "auto"
	// ColorAlways always uses colors.
	ColorAlways ColorMode = "always"
	// ColorNever never uses colors.
	ColorNever ColorMode = "never"
)

// TimezoneMode represents the timezone display mode.
type TimezoneMode string

const (
	// TimezoneLocal uses the local timezone.
	TimezoneLocal TimezoneMode = "local"
	// TimezoneUTC uses UTC.
	TimezoneUTC TimezoneMode = "utc"
)

// Config holds all configuration values.
type Config struct {
	Guard      GuardConfig       `mapstructure:"guard"`
	Extensions []ExtensionConfig `mapstructure:"extensions"`
	Storage    StorageConfig     `mapstructure:"storage"`
	Display    DisplayConfig     `mapstructure:"display"`
}

// GuardConfig holds monitoring-related settings.
type GuardConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	AutoRestore   bool          `mapstructure:"auto_restore"`
	Interval      time.Duration `mapstructure:"interval"`
	Notifications bool          `mapstructure:"notifications"`
}

// ExtensionConfig holds the baseline for a single guarded extension.
type ExtensionConfig struct {
	Ext     string `mapstructure:"ext"`
	Handler string `mapstructure:"handler"`
	Label   string `mapstructure:"label,omitempty"`
}

// StorageConfig holds storage-related settings.
type StorageConfig struct {
	Path          string `mapstructure:"path"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// DisplayConfig holds display-related settings.
type DisplayConfig struct {
	Colors   ColorMode    `mapstructure:"colors"`
	Timezone TimezoneMode `mapstructure:"timezone"`
}

// Paths holds resolved filesystem paths.
type Paths struct {
	ConfigFile   string
	ConfigDir    string
	DataDir      string
	DatabaseFile string
}

// Load loads configuration from the given path or default locations.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		paths := ResolvePaths()

		v.SetConfigName("config")
		v.AddConfigPath(paths.ConfigDir)
	}

	v.SetEnvPrefix("WINASSOCGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	normalize(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config with all default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)
	normalize(&cfg)

	return &cfg
}

// normalize canonicalizes extensions and clamps the polling interval.
func normalize(cfg *Config) {
	settings := monitor.Settings{Interval: cfg.Guard.Interval}
	cfg.Guard.Interval = settings.ClampedInterval()

	for i := range cfg.Extensions {
		cfg.Extensions[i].Ext = assoc.NormalizeExt(cfg.Extensions[i].Ext).String()
		cfg.Extensions[i].Handler = assoc.NormalizeHandler(cfg.Extensions[i].Handler).String()
	}
}

// ResolvePaths returns the resolved filesystem paths for the current platform.
func ResolvePaths() *Paths {
	configDir := getConfigDir()
	dataDir := getDataDir()

	return &Paths{
		ConfigFile:   filepath.Join(configDir, "config.yaml"),
		ConfigDir:    configDir,
		DataDir:      dataDir,
		DatabaseFile: filepath.Join(dataDir, "events.db"),
	}
}

// GetDatabasePath returns the resolved database path from config or default.
func (c *Config) GetDatabasePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}

	paths := ResolvePaths()
	return paths.DatabaseFile
}

// MonitorSettings converts the guard section into monitor settings.
func (c *Config) MonitorSettings() monitor.Settings {
	return monitor.Settings{
		Enabled:       c.Guard.Enabled,
		AutoRestore:   c.Guard.AutoRestore,
		Interval:      c.Guard.Interval,
		Notifications: c.Guard.Notifications,
	}
}

// BaselineEntries converts the configured extensions into baseline entries.
func (c *Config) BaselineEntries() []baseline.Entry {
	entries := make([]baseline.Entry, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		entries = append(entries, baseline.Entry{
			Ext:     assoc.Extension(ext.Ext),
			Handler: assoc.HandlerID(ext.Handler),
			Label:   ext.Label,
		})
	}
	return entries
}

// ShouldUseColors returns true if colors should be used based on config and terminal.
func (c *Config) ShouldUseColors() bool {
	switch c.Display.Colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		// Auto: check if stdout is a terminal
		fileInfo, _ := os.Stdout.Stat()
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
}
