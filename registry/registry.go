// Package registry is the operating-system boundary for file
// associations. On Windows it reads the effective default handler for
// an extension (honoring the protected per-user UserChoice override),
// performs the ordered restore sequence against the per-user Classes
// record, and issues the shell change notification. Exactly three OS
// touchpoints are used; nothing else is read or written.
//
// On other platforms every operation fails with ErrUnsupported so the
// tool still builds and its non-OS commands keep working.
package registry

import "errors"

// ErrUnsupported is returned by all association operations on
// platforms other than Windows.
var ErrUnsupported = errors.New("file associations are only supported on windows")

// Shell change notification constants (shell32 SHChangeNotify).
const (
	shcneAssocChanged = 0x08000000
	shcnfIDList       = 0x0000
)
