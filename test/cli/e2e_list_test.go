package cli_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sherlock-488/WinAssocGuard/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("list")
	require.NoError(t, err)
	assert.Contains(t, stdout, ".pdf")
	assert.Contains(t, stdout, "Acrobat.Document.DC")
	assert.Contains(t, stdout, "Adobe Acrobat")
	assert.Contains(t, stdout, ".html")
	assert.Contains(t, stdout, "ChromeHTML")
}

func TestList_JSON(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("list", "--format", "json")
	require.NoError(t, err)

	var views []tui.BaselineView
	require.NoError(t, json.Unmarshal([]byte(stdout), &views))
	require.Len(t, views, 2)
	assert.Equal(t, ".pdf", views[0].Ext)
	assert.Equal(t, ".html", views[1].Ext)
}

func TestList_Empty(t *testing.T) {
	env := newTestEnvWithConfig(t, fmt.Sprintf(`storage:
  path: %s
display:
  colors: never
`, "list-empty.db"))

	stdout, _, err := env.run("list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No extensions are guarded")
}

func TestRemove(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("remove", ".pdf")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed 1 guarded extension(s).")

	stdout, _, err = env.run("list", "--format", "json")
	require.NoError(t, err)
	var views []tui.BaselineView
	require.NoError(t, json.Unmarshal([]byte(stdout), &views))
	require.Len(t, views, 1)
	assert.Equal(t, ".html", views[0].Ext)
}

func TestRemove_All(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("remove", "--all")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed 2 guarded extension(s).")

	stdout, _, err = env.run("list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No extensions are guarded")
}

func TestRemove_NoMatch(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("remove", ".xyz")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No matching guarded extensions")
}
