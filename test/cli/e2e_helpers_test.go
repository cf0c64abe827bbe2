package cli_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sherlock-488/WinAssocGuard/cli"
	"github.com/sherlock-488/WinAssocGuard/core/assoc"
	"github.com/sherlock-488/WinAssocGuard/core/eventlog"
	"github.com/sherlock-488/WinAssocGuard/storage"
	"github.com/sherlock-488/WinAssocGuard/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t          *testing.T
	tmpDir     string
	dbPath     string
	configPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, "")
}

func newTestEnvWithConfig(t *testing.T, configYAML string) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	configPath := filepath.Join(tmpDir, "config.yaml")

	if configYAML == "" {
		configYAML = fmt.Sprintf(`guard:
  enabled: true
  auto_restore: true
  interval: 3s
extensions:
  - ext: .pdf
    handler: Acrobat.Document.DC
    label: Adobe Acrobat
  - ext: .html
    handler: ChromeHTML
storage:
  path: %s
  retention_days: 90
display:
  colors: never
`, dbPath)
	}

	err := os.WriteFile(configPath, []byte(configYAML), 0o600)
	require.NoError(t, err)

	return &testEnv{
		t:          t,
		tmpDir:     tmpDir,
		dbPath:     dbPath,
		configPath: configPath,
	}
}

func (env *testEnv) run(args ...string) (stdout, stderr string, err error) {
	env.t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)

	fullArgs := append([]string{"--config", env.configPath, "--no-color"}, args...)
	rootCmd.SetArgs(fullArgs)
	err = rootCmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

func (env *testEnv) openStore() (storage.Store, func()) {
	env.t.Helper()

	store, err := storage.NewSQLiteStore(env.dbPath)
	require.NoError(env.t, err)
	err = store.Init(context.Background())
	require.NoError(env.t, err)

	return store, func() {
		err := store.Close()
		require.NoError(env.t, err)
	}
}

func (env *testEnv) seedStore(fn func(ctx context.Context, store storage.Store)) {
	env.t.Helper()

	store, cleanup := env.openStore()
	defer cleanup()

	fn(context.Background(), store)
}

// seedNRecentEvents returns a seed function that creates n restored
// events with recent timestamps, newest last.
func seedNRecentEvents(n int) func(env *testEnv) {
	return func(env *testEnv) {
		env.seedStore(func(ctx context.Context, store storage.Store) {
			for i := 0; i < n; i++ {
				evt := eventlog.New(".pdf", "Intruder.ProgID", "Acrobat.Document.DC", eventlog.ActionRestored)
				evt.Timestamp = time.Now().UTC().Add(-time.Duration(n-i) * time.Minute)
				require.NoError(env.t, store.SaveEvent(ctx, evt))
			}
		})
	}
}

// seedMixedExtensionEvents seeds 3 events each for .pdf and .html.
func seedMixedExtensionEvents(env *testEnv) {
	env.seedStore(func(ctx context.Context, store storage.Store) {
		for _, ext := range []assoc.Extension{".pdf", ".html"} {
			for i := 0; i < 3; i++ {
				evt := eventlog.New(ext, "Intruder.ProgID", "Base.ProgID", eventlog.ActionRestored)
				evt.Timestamp = time.Now().UTC().Add(-time.Duration(6-i) * time.Minute)
				require.NoError(env.t, store.SaveEvent(ctx, evt))
			}
		}
	})
}

// seedMixedActionEvents seeds restored and restore_failed events.
func seedMixedActionEvents(env *testEnv) {
	env.seedStore(func(ctx context.Context, store storage.Store) {
		actions := []eventlog.Action{
			eventlog.ActionRestored,
			eventlog.ActionRestoreFailed,
			eventlog.ActionRestored,
			eventlog.ActionRestoreFailed,
		}
		for i, action := range actions {
			evt := eventlog.New(".pdf", "Intruder.ProgID", "Base.ProgID", action)
			evt.Timestamp = time.Now().UTC().Add(-time.Duration(len(actions)-i) * time.Minute)
			if action == eventlog.ActionRestoreFailed {
				evt.Error = "access denied"
			}
			require.NoError(env.t, store.SaveEvent(ctx, evt))
		}
	})
}

// seedOldAndRecentEvents seeds 5 events past the 90-day retention
// cutoff and 3 recent events.
func seedOldAndRecentEvents(env *testEnv) {
	env.seedStore(func(ctx context.Context, store storage.Store) {
		for i := 0; i < 5; i++ {
			evt := eventlog.New(".pdf", "Intruder.ProgID", "Base.ProgID", eventlog.ActionRestored)
			evt.Timestamp = time.Now().UTC().Add(-time.Duration(100+i) * 24 * time.Hour)
			require.NoError(env.t, store.SaveEvent(ctx, evt))
		}
		for i := 0; i < 3; i++ {
			evt := eventlog.New(".html", "Intruder.ProgID", "Base.ProgID", eventlog.ActionRestored)
			evt.Timestamp = time.Now().UTC().Add(-time.Duration(3-i) * time.Minute)
			require.NoError(env.t, store.SaveEvent(ctx, evt))
		}
	})
}

// --- Assertion helpers ---

func assertEventCount(n int) func(*testing.T, string, error) {
	return func(t *testing.T, stdout string, err error) {
		t.Helper()
		assert.NoError(t, err)
		var evts []tui.EventView
		require.NoError(t, json.Unmarshal([]byte(stdout), &evts))
		assert.Len(t, evts, n)
	}
}

func assertAllEventsForExt(ext string) func(*testing.T, string, error) {
	return func(t *testing.T, stdout string, err error) {
		t.Helper()
		assert.NoError(t, err)
		var evts []tui.EventView
		require.NoError(t, json.Unmarshal([]byte(stdout), &evts))
		assert.NotEmpty(t, evts)
		for _, e := range evts {
			assert.Equal(t, ext, e.Ext)
		}
	}
}

func assertAllActionsAre(action string) func(*testing.T, string, error) {
	return func(t *testing.T, stdout string, err error) {
		t.Helper()
		assert.NoError(t, err)
		var evts []tui.EventView
		require.NoError(t, json.Unmarshal([]byte(stdout), &evts))
		assert.NotEmpty(t, evts)
		for _, e := range evts {
			assert.Equal(t, action, e.Action)
		}
	}
}

func assertOutputContains(substr string) func(*testing.T, string, error) {
	return func(t *testing.T, stdout string, err error) {
		t.Helper()
		assert.NoError(t, err)
		assert.Contains(t, stdout, substr)
	}
}

func assertValidJSONL(t *testing.T, stdout string) {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.NotEmpty(t, lines)
	for _, line := range lines {
		var obj json.RawMessage
		assert.NoError(t, json.Unmarshal([]byte(line), &obj), "invalid JSONL line: %s", line)
	}
}

func assertValidCSV(expectedRows int) func(*testing.T, string) {
	return func(t *testing.T, stdout string) {
		t.Helper()
		r := csv.NewReader(strings.NewReader(stdout))
		records, err := r.ReadAll()
		assert.NoError(t, err)
		// +1 for header row
		assert.Len(t, records, expectedRows+1)
	}
}
