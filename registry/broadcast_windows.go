//go:build windows

package registry

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	shell32          = windows.NewLazySystemDLL("shell32.dll")
	procChangeNotify = shell32.NewProc("SHChangeNotify")
)

// broadcastAssocChanged tells the shell that association data changed
// so Explorer and running applications refresh without a restart.
func broadcastAssocChanged() error {
	if err := procChangeNotify.Find(); err != nil {
		return fmt.Errorf("locate SHChangeNotify: %w", err)
	}
	// SHChangeNotify has no return value to inspect.
	_, _, _ = procChangeNotify.Call(uintptr(shcneAssocChanged), uintptr(shcnfIDList), 0, 0)
	return nil
}
