//go:build windows

package registry

import (
	"context"
	"errors"
	"syscall"

	winreg "golang.org/x/sys/windows/registry"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

const (
	fileExtsPath = `Software\Microsoft\Windows\CurrentVersion\Explorer\FileExts`
	classesPath  = `Software\Classes`
)

func userChoicePath(ext assoc.Extension) string {
	return fileExtsPath + `\` + ext.String() + `\UserChoice`
}

func classesExtPath(ext assoc.Extension) string {
	return classesPath + `\` + ext.String()
}

type winReader struct{}

// NewReader returns the Windows association reader.
func NewReader() assoc.Reader {
	return winReader{}
}

// CurrentHandler resolves the handler that is in effect when a file of
// the given extension is opened: the protected UserChoice override
// first, then the per-user Classes default, then the machine default.
func (winReader) CurrentHandler(ctx context.Context, ext assoc.Extension) (assoc.HandlerID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ext = assoc.NormalizeExt(ext.String())
	if !ext.Valid() {
		return "", assoc.NewReadError(ext, assoc.ReadNotFound, nil)
	}

	h, err := readValue(winreg.CURRENT_USER, userChoicePath(ext), "ProgId")
	if err != nil {
		return "", classifyRead(ext, err)
	}
	if !h.IsZero() {
		return h, nil
	}

	h, err = readValue(winreg.CURRENT_USER, classesExtPath(ext), "")
	if err != nil {
		return "", classifyRead(ext, err)
	}
	if !h.IsZero() {
		return h, nil
	}

	h, err = readValue(winreg.CLASSES_ROOT, ext.String(), "")
	if err != nil {
		return "", classifyRead(ext, err)
	}
	if !h.IsZero() {
		return h, nil
	}

	return "", assoc.NewReadError(ext, assoc.ReadNotFound, nil)
}

// readValue reads a string value from a key, treating a missing key or
// value as absent rather than an error. An empty value name reads the
// key's default value.
func readValue(root winreg.Key, path, name string) (assoc.HandlerID, error) {
	k, err := winreg.OpenKey(root, path, winreg.QUERY_VALUE)
	if err != nil {
		if isAbsent(err) {
			return "", nil
		}
		return "", err
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if err != nil {
		if isAbsent(err) {
			return "", nil
		}
		return "", err
	}
	return assoc.NormalizeHandler(v), nil
}

// isAbsent reports whether err means a key or value does not exist.
func isAbsent(err error) bool {
	return errors.Is(err, winreg.ErrNotExist) ||
		errors.Is(err, syscall.ERROR_FILE_NOT_FOUND) ||
		errors.Is(err, syscall.ERROR_PATH_NOT_FOUND)
}

// classifyRead maps an OS error to the read-error taxonomy.
func classifyRead(ext assoc.Extension, err error) error {
	if errors.Is(err, syscall.ERROR_ACCESS_DENIED) {
		return assoc.NewReadError(ext, assoc.ReadAccessDenied, err)
	}
	return assoc.NewReadError(ext, assoc.ReadSystemError, err)
}
