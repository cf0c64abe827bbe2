// Package notify delivers desktop notifications for drift events.
package notify

import (
	"fmt"

	"github.com/sherlock-488/WinAssocGuard/core/eventlog"
)

// Notifier delivers a user-visible notification for a drift event.
type Notifier interface {
	Notify(title, message string) error
}

// Nop is a Notifier that discards everything.
type Nop struct{}

func (Nop) Notify(string, string) error { return nil }

// ForEvent formats a notification for a drift event. Events with
// ActionNone produce no notification.
func ForEvent(event eventlog.Event) (title, message string, ok bool) {
	switch event.Action {
	case eventlog.ActionRestored:
		title = "File association restored"
		message = fmt.Sprintf("%s was changed to %s and has been restored to %s.",
			event.Ext, event.Previous, event.Baseline)
	case eventlog.ActionRestoreFailed:
		title = "File association restore failed"
		message = fmt.Sprintf("%s drifted to %s but could not be restored to %s.",
			event.Ext, event.Previous, event.Baseline)
	default:
		return "", "", false
	}
	return title, message, true
}
