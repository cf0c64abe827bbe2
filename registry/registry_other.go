//go:build !windows

package registry

import (
	"context"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

// DefaultCandidateLimit caps candidate handler enumeration.
const DefaultCandidateLimit = 24

type unsupportedReader struct{}

// NewReader returns a reader whose operations fail with ErrUnsupported.
func NewReader() assoc.Reader {
	return unsupportedReader{}
}

func (unsupportedReader) CurrentHandler(_ context.Context, ext assoc.Extension) (assoc.HandlerID, error) {
	return "", assoc.NewReadError(ext, assoc.ReadSystemError, ErrUnsupported)
}

type unsupportedRestorer struct{}

// NewRestorer returns a restorer whose operations fail with ErrUnsupported.
func NewRestorer() assoc.Restorer {
	return unsupportedRestorer{}
}

func (unsupportedRestorer) Restore(_ context.Context, ext assoc.Extension, _ assoc.HandlerID) error {
	return assoc.NewRestoreError(ext, assoc.RestoreSystemError, ErrUnsupported)
}

// ValidHandler always reports false off Windows.
func ValidHandler(assoc.HandlerID) bool { return false }

// HandlerLabel returns the raw handler ID off Windows.
func HandlerLabel(h assoc.HandlerID) string { return h.String() }

// HandlerAppName returns "" off Windows.
func HandlerAppName(assoc.HandlerID) string { return "" }

// FormatHandler returns the raw handler ID off Windows.
func FormatHandler(h assoc.HandlerID) string { return h.String() }

// CandidateHandlers is unavailable off Windows.
func CandidateHandlers(assoc.Extension, int) ([]assoc.HandlerID, error) {
	return nil, ErrUnsupported
}

// UserChoiceExtensions is unavailable off Windows.
func UserChoiceExtensions() ([]assoc.Extension, error) {
	return nil, ErrUnsupported
}

// EnableAutostart is unavailable off Windows.
func EnableAutostart() error { return ErrUnsupported }

// DisableAutostart is unavailable off Windows.
func DisableAutostart() error { return ErrUnsupported }

// AutostartEnabled is unavailable off Windows.
func AutostartEnabled() (bool, error) { return false, ErrUnsupported }
