package assoc

import (
	"errors"
	"fmt"
)

// ReadErrorKind classifies a failed association read.
type ReadErrorKind string

const (
	// ReadNotFound means the extension has no association at all.
	ReadNotFound ReadErrorKind = "not_found"
	// ReadAccessDenied means the association record could not be opened.
	ReadAccessDenied ReadErrorKind = "access_denied"
	// ReadSystemError covers any other OS-level read failure.
	ReadSystemError ReadErrorKind = "system_error"
)

// ReadError describes a failure to read an extension's current handler.
type ReadError struct {
	Ext  Extension
	Kind ReadErrorKind
	Err  error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("read association %s: %s: %v", e.Ext, e.Kind, e.Err)
	}
	return fmt.Sprintf("read association %s: %s", e.Ext, e.Kind)
}

// Unwrap returns the underlying error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a ReadError for ext with the given kind.
func NewReadError(ext Extension, kind ReadErrorKind, err error) *ReadError {
	return &ReadError{Ext: ext, Kind: kind, Err: err}
}

// IsNotFound reports whether err is a ReadError with kind ReadNotFound.
func IsNotFound(err error) bool {
	var re *ReadError
	return errors.As(err, &re) && re.Kind == ReadNotFound
}

// RestoreErrorKind classifies a failed restore.
type RestoreErrorKind string

const (
	// RestoreWriteFailed means the plain default record could not be set.
	RestoreWriteFailed RestoreErrorKind = "write_failed"
	// RestoreSystemError covers any other OS-level restore failure.
	RestoreSystemError RestoreErrorKind = "system_error"
)

// RestoreError describes a failure to restore an extension's handler.
type RestoreError struct {
	Ext  Extension
	Kind RestoreErrorKind
	Err  error
}

// Error implements the error interface.
func (e *RestoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("restore association %s: %s: %v", e.Ext, e.Kind, e.Err)
	}
	return fmt.Sprintf("restore association %s: %s", e.Ext, e.Kind)
}

// Unwrap returns the underlying error.
func (e *RestoreError) Unwrap() error {
	return e.Err
}

// NewRestoreError creates a RestoreError for ext with the given kind.
func NewRestoreError(ext Extension, kind RestoreErrorKind, err error) *RestoreError {
	return &RestoreError{Ext: ext, Kind: kind, Err: err}
}
