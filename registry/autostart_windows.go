//go:build windows

package registry

import (
	"fmt"
	"os"

	winreg "golang.org/x/sys/windows/registry"
)

const (
	runKeyPath   = `Software\Microsoft\Windows\CurrentVersion\Run`
	runValueName = "WinAssocGuard"
)

// EnableAutostart registers the watcher to start at user logon.
func EnableAutostart() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	k, _, err := winreg.CreateKey(winreg.CURRENT_USER, runKeyPath, winreg.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open Run key: %w", err)
	}
	defer k.Close()

	if err := k.SetStringValue(runValueName, fmt.Sprintf(`"%s" watch`, exe)); err != nil {
		return fmt.Errorf("set Run value: %w", err)
	}
	return nil
}

// DisableAutostart removes the logon registration. A missing value is
// not an error.
func DisableAutostart() error {
	k, err := winreg.OpenKey(winreg.CURRENT_USER, runKeyPath, winreg.SET_VALUE)
	if err != nil {
		if isAbsent(err) {
			return nil
		}
		return fmt.Errorf("open Run key: %w", err)
	}
	defer k.Close()

	if err := k.DeleteValue(runValueName); err != nil && !isAbsent(err) {
		return fmt.Errorf("delete Run value: %w", err)
	}
	return nil
}

// AutostartEnabled reports whether the logon registration is present.
func AutostartEnabled() (bool, error) {
	v, err := readValue(winreg.CURRENT_USER, runKeyPath, runValueName)
	if err != nil {
		return false, err
	}
	return !v.IsZero(), nil
}
