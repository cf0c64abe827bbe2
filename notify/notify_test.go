package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sherlock-488/WinAssocGuard/core/eventlog"
)

func TestForEvent(t *testing.T) {
	t.Run("restored", func(t *testing.T) {
		event := eventlog.New(".pdf", "Intruder.ProgID", "Acrobat.Document", eventlog.ActionRestored)

		title, message, ok := ForEvent(event)
		assert.True(t, ok)
		assert.Equal(t, "File association restored", title)
		assert.Contains(t, message, ".pdf")
		assert.Contains(t, message, "Intruder.ProgID")
		assert.Contains(t, message, "Acrobat.Document")
	})

	t.Run("restore failed", func(t *testing.T) {
		event := eventlog.New(".pdf", "Intruder.ProgID", "Acrobat.Document", eventlog.ActionRestoreFailed)

		title, _, ok := ForEvent(event)
		assert.True(t, ok)
		assert.Equal(t, "File association restore failed", title)
	})

	t.Run("report only drift is silent", func(t *testing.T) {
		event := eventlog.New(".pdf", "Intruder.ProgID", "Acrobat.Document", eventlog.ActionNone)

		_, _, ok := ForEvent(event)
		assert.False(t, ok)
	})
}

func TestNopNotifier(t *testing.T) {
	assert.NoError(t, Nop{}.Notify("title", "message"))
}
