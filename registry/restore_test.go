package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

type stepRecorder struct {
	calls []string
}

func (r *stepRecorder) step(name string, err error) func() error {
	return func() error {
		r.calls = append(r.calls, name)
		return err
	}
}

func TestRunRestore_StepOrder(t *testing.T) {
	rec := &stepRecorder{}

	err := runRestore(".pdf", restoreSteps{
		setDefault:     rec.step("setDefault", nil),
		deleteOverride: rec.step("deleteOverride", nil),
		broadcast:      rec.step("broadcast", nil),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"setDefault", "deleteOverride", "broadcast"}, rec.calls)
}

func TestRunRestore_SetDefaultFailureAbortsSequence(t *testing.T) {
	rec := &stepRecorder{}
	cause := errors.New("access is denied")

	err := runRestore(".pdf", restoreSteps{
		setDefault:     rec.step("setDefault", cause),
		deleteOverride: rec.step("deleteOverride", nil),
		broadcast:      rec.step("broadcast", nil),
	})

	require.Error(t, err)

	var restoreErr *assoc.RestoreError
	require.ErrorAs(t, err, &restoreErr)
	assert.Equal(t, assoc.RestoreWriteFailed, restoreErr.Kind)
	assert.Equal(t, assoc.Extension(".pdf"), restoreErr.Ext)
	assert.ErrorIs(t, err, cause)

	// The default was never written, so the override must stay put.
	assert.Equal(t, []string{"setDefault"}, rec.calls)
}

func TestRunRestore_OverrideDeletionFailureStillSucceeds(t *testing.T) {
	rec := &stepRecorder{}

	err := runRestore(".html", restoreSteps{
		setDefault:     rec.step("setDefault", nil),
		deleteOverride: rec.step("deleteOverride", errors.New("key in use")),
		broadcast:      rec.step("broadcast", nil),
	})

	// The plain default is already corrected at this point.
	require.NoError(t, err)
	assert.Equal(t, []string{"setDefault", "deleteOverride", "broadcast"}, rec.calls)
}

func TestRunRestore_BroadcastFailureStillSucceeds(t *testing.T) {
	rec := &stepRecorder{}

	err := runRestore(".html", restoreSteps{
		setDefault:     rec.step("setDefault", nil),
		deleteOverride: rec.step("deleteOverride", nil),
		broadcast:      rec.step("broadcast", errors.New("no shell")),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"setDefault", "deleteOverride", "broadcast"}, rec.calls)
}
