//go:build windows

package registry

import (
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	winreg "golang.org/x/sys/windows/registry"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

var (
	shlwapi                = windows.NewLazySystemDLL("shlwapi.dll")
	procAssocQueryString   = shlwapi.NewProc("AssocQueryStringW")
	procLoadIndirectString = shlwapi.NewProc("SHLoadIndirectString")
)

const assocstrFriendlyAppName = 4

// ValidHandler reports whether the handler is registered, i.e. its key
// exists under HKCR.
func ValidHandler(h assoc.HandlerID) bool {
	h = assoc.NormalizeHandler(h.String())
	if h.IsZero() {
		return false
	}
	k, err := winreg.OpenKey(winreg.CLASSES_ROOT, h.String(), winreg.QUERY_VALUE)
	if err != nil {
		return false
	}
	k.Close()
	return true
}

// HandlerLabel returns a human-friendly name for a handler, for
// display only. Resolution prefers the registered type name, then the
// shell's friendly app name, then the FriendlyTypeName value, then the
// executable parsed from the open command. Falls back to the raw ID.
func HandlerLabel(h assoc.HandlerID) string {
	h = assoc.NormalizeHandler(h.String())
	if h.IsZero() {
		return ""
	}

	if display, _ := readValue(winreg.CLASSES_ROOT, h.String(), ""); !display.IsZero() {
		if resolved := resolveResourceString(display.String()); resolved != "" {
			return resolved
		}
		return display.String()
	}

	// The shell API resolves modern app registrations better than raw
	// registry lookups.
	if name := assocFriendlyAppName(h.String()); name != "" {
		return name
	}

	if friendly, _ := readValue(winreg.CLASSES_ROOT, h.String(), "FriendlyTypeName"); !friendly.IsZero() {
		return friendly.String()
	}

	if exe := openCommandExe(h); exe != "" {
		return exe
	}

	return h.String()
}

// HandlerAppName returns the application name behind a handler,
// preferring shell association metadata over registry heuristics.
func HandlerAppName(h assoc.HandlerID) string {
	h = assoc.NormalizeHandler(h.String())
	if h.IsZero() {
		return ""
	}

	if name := assocFriendlyAppName(h.String()); name != "" && name != h.String() {
		return name
	}

	if strings.HasPrefix(strings.ToLower(h.String()), `applications\`) {
		if app := h.String()[len(`applications\`):]; app != "" {
			return app
		}
	}

	return openCommandExe(h)
}

// FormatHandler renders a handler for display: friendly name plus the
// original ID for traceability.
func FormatHandler(h assoc.HandlerID) string {
	h = assoc.NormalizeHandler(h.String())
	if h.IsZero() {
		return ""
	}
	if label := HandlerLabel(h); label != "" && label != h.String() {
		return label + " (" + h.String() + ")"
	}
	return h.String()
}

// openCommandExe extracts the executable name from the handler's shell
// open command, if registered.
func openCommandExe(h assoc.HandlerID) string {
	for _, suffix := range []string{`shell\open\command`, `shell\Open\command`} {
		if cmd, _ := readValue(winreg.CLASSES_ROOT, h.String()+`\`+suffix, ""); !cmd.IsZero() {
			if exe := ExtractCommandExe(cmd.String()); exe != "" {
				return exe
			}
		}
	}
	return ""
}

// assocFriendlyAppName queries AssocQueryStringW for the friendly
// application name of a ProgID or extension.
func assocFriendlyAppName(progIDOrExt string) string {
	pszAssoc, err := syscall.UTF16PtrFromString(progIDOrExt)
	if err != nil {
		return ""
	}
	pszExtra, err := syscall.UTF16PtrFromString("open")
	if err != nil {
		return ""
	}

	var size uint32
	hr, _, _ := procAssocQueryString.Call(
		0, // ASSOCF_NONE
		assocstrFriendlyAppName,
		uintptr(unsafe.Pointer(pszAssoc)),
		uintptr(unsafe.Pointer(pszExtra)),
		0,
		uintptr(unsafe.Pointer(&size)),
	)
	// S_OK or S_FALSE both report a required buffer size.
	if (hr != 0 && hr != 1) || size == 0 {
		return ""
	}

	buf := make([]uint16, size)
	hr, _, _ = procAssocQueryString.Call(
		0,
		assocstrFriendlyAppName,
		uintptr(unsafe.Pointer(pszAssoc)),
		uintptr(unsafe.Pointer(pszExtra)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
	)
	if hr != 0 {
		return ""
	}
	return strings.TrimSpace(windows.UTF16ToString(buf))
}

// resolveResourceString resolves indirect resource values such as
// "@%SystemRoot%\system32\shell32.dll,-22033" to their display text.
func resolveResourceString(value string) string {
	s := strings.TrimSpace(value)
	if !strings.HasPrefix(s, "@") {
		return ""
	}
	src, err := syscall.UTF16PtrFromString(s)
	if err != nil {
		return ""
	}
	buf := make([]uint16, 1024)
	hr, _, _ := procLoadIndirectString.Call(
		uintptr(unsafe.Pointer(src)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		0,
	)
	if hr != 0 {
		return ""
	}
	return strings.TrimSpace(windows.UTF16ToString(buf))
}
