package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.Guard.Enabled)
	assert.True(t, cfg.Guard.AutoRestore)
	assert.Equal(t, 3*time.Second, cfg.Guard.Interval)
	assert.True(t, cfg.Guard.Notifications)
	assert.Empty(t, cfg.Extensions)
	assert.Equal(t, 90, cfg.Storage.RetentionDays)
	assert.Equal(t, ColorAuto, cfg.Display.Colors)
	assert.Equal(t, TimezoneLocal, cfg.Display.Timezone)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Guard.Interval)
	assert.True(t, cfg.Guard.Enabled)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
guard:
  enabled: true
  auto_restore: false
  interval: 5s
  notifications: false
extensions:
  - ext: .pdf
    handler: Acrobat.Document.DC
    label: Adobe Acrobat
  - ext: html
    handler: ChromeHTML
storage:
  retention_days: 30
display:
  colors: never
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Guard.AutoRestore)
	assert.Equal(t, 5*time.Second, cfg.Guard.Interval)
	assert.False(t, cfg.Guard.Notifications)
	assert.Equal(t, 30, cfg.Storage.RetentionDays)
	assert.Equal(t, ColorNever, cfg.Display.Colors)

	require.Len(t, cfg.Extensions, 2)
	assert.Equal(t, ".pdf", cfg.Extensions[0].Ext)
	assert.Equal(t, "Adobe Acrobat", cfg.Extensions[0].Label)
	// Extensions are normalized on load
	assert.Equal(t, ".html", cfg.Extensions[1].Ext)
}

func TestLoad_ClampsInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval string
		want     time.Duration
	}{
		{"below minimum", "200ms", time.Second},
		{"above maximum", "5m", 60 * time.Second},
		{"in range", "10s", 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "guard:\n  interval: "+tt.interval+"\n")

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Guard.Interval)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"invalid extension",
			"extensions:\n  - ext: '..bad'\n    handler: SomeProgID\n",
		},
		{
			"empty handler",
			"extensions:\n  - ext: .pdf\n    handler: ''\n",
		},
		{
			"duplicate extension",
			"extensions:\n  - ext: .pdf\n    handler: A\n  - ext: PDF\n    handler: B\n",
		},
		{
			"negative retention",
			"storage:\n  retention_days: -1\n",
		},
		{
			"bad color mode",
			"display:\n  colors: sometimes\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestConfig_MonitorSettings(t *testing.T) {
	cfg := Default()
	cfg.Guard.AutoRestore = false

	settings := cfg.MonitorSettings()
	assert.True(t, settings.Enabled)
	assert.False(t, settings.AutoRestore)
	assert.Equal(t, 3*time.Second, settings.Interval)
}

func TestConfig_BaselineEntries(t *testing.T) {
	cfg := Default()
	cfg.Extensions = []ExtensionConfig{
		{Ext: ".pdf", Handler: "Acrobat.Document.DC", Label: "Adobe Acrobat"},
	}

	entries := cfg.BaselineEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, assoc.Extension(".pdf"), entries[0].Ext)
	assert.Equal(t, assoc.HandlerID("Acrobat.Document.DC"), entries[0].Handler)
	assert.Equal(t, "Adobe Acrobat", entries[0].Label)
}

func TestConfig_GetDatabasePath(t *testing.T) {
	cfg := Default()
	assert.NotEmpty(t, cfg.GetDatabasePath())

	cfg.Storage.Path = "/tmp/custom.db"
	assert.Equal(t, "/tmp/custom.db", cfg.GetDatabasePath())
}
