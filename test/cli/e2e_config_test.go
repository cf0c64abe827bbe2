package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, env.configPath)
	assert.Contains(t, stdout, "retention_days")

	stdout, _, err = env.run("config", "show", "--format", "json")
	require.NoError(t, err)
	var obj map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal([]byte(stdout), &obj))
}

func TestConfigGet(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("config", "get", "storage.retention_days")
	require.NoError(t, err)
	assert.Contains(t, stdout, "90")

	_, _, err = env.run("config", "get", "no.such.key")
	assert.Error(t, err)
}

func TestConfigSet(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("config", "set", "storage.retention_days", "30")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Set storage.retention_days = 30")

	stdout, _, err = env.run("config", "get", "storage.retention_days")
	require.NoError(t, err)
	assert.Contains(t, stdout, "30")
}

func TestConfigSet_RejectsInvalidValue(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "set", "display.colors", "rainbow")
	assert.Error(t, err)
}

func TestConfigReset(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "set", "guard.interval", "10s")
	require.NoError(t, err)

	stdout, _, err := env.run("config", "reset")
	require.NoError(t, err)
	assert.Contains(t, stdout, "reset")

	// Back to the default interval.
	stdout, _, err = env.run("config", "get", "guard.interval")
	require.NoError(t, err)
	assert.Contains(t, stdout, "3s")
}

func TestConfigPath(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("config", "path")
	require.NoError(t, err)
	assert.Contains(t, stdout, env.configPath)
}
