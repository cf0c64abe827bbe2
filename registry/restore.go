package registry

import (
	"github.com/safedep/dry/log"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

// restoreSteps holds the three registry operations behind a restore so
// the ordering rules stay testable away from a live registry.
type restoreSteps struct {
	setDefault     func() error
	deleteOverride func() error
	broadcast      func() error
}

// runRestore executes the ordered best-effort sequence:
//
//  1. Write the plain per-user default handler record.
//  2. Delete the UserChoice override key so the default just written
//     becomes effective again. The override store is hash-protected
//     and cannot be written with an arbitrary choice; deletion is the
//     only safe operation on it. A missing key counts as already gone.
//  3. Broadcast the shell change notification so running shells pick
//     up the new association.
//
// The default is set before the override is removed so the extension
// never has a moment with no handler at all. A step-1 failure aborts
// the sequence; step-2 and step-3 failures do not fail an otherwise
// successful restore, because the default record is already corrected.
func runRestore(ext assoc.Extension, steps restoreSteps) error {
	if err := steps.setDefault(); err != nil {
		return assoc.NewRestoreError(ext, assoc.RestoreWriteFailed, err)
	}

	if err := steps.deleteOverride(); err != nil {
		log.Warnf("remove UserChoice for %s: %v", ext, err)
	}

	if err := steps.broadcast(); err != nil {
		log.Warnf("shell change notification: %v", err)
	}

	return nil
}
