//go:build windows

package registry

import (
	"fmt"
	"sort"

	winreg "golang.org/x/sys/windows/registry"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

// DefaultCandidateLimit caps candidate handler enumeration.
const DefaultCandidateLimit = 24

// CandidateHandlers collects likely handlers for an extension from the
// places Windows records them: the current effective chain, the
// per-extension OpenWithProgids and OpenWithList records, and
// registered applications declaring the extension in SupportedTypes.
// Only handlers that resolve under HKCR are returned, capped at limit.
func CandidateHandlers(ext assoc.Extension, limit int) ([]assoc.HandlerID, error) {
	ext = assoc.NormalizeExt(ext.String())
	if !ext.Valid() {
		return nil, fmt.Errorf("invalid extension: %q", ext)
	}
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}

	seen := make(map[assoc.HandlerID]bool)
	var out []assoc.HandlerID
	add := func(h assoc.HandlerID) {
		h = assoc.NormalizeHandler(h.String())
		if h.IsZero() || seen[h] || !ValidHandler(h) {
			return
		}
		seen[h] = true
		out = append(out, h)
	}

	// Current effective chain first.
	if h, err := readValue(winreg.CURRENT_USER, userChoicePath(ext), "ProgId"); err == nil {
		add(h)
	}
	if h, err := readValue(winreg.CURRENT_USER, classesExtPath(ext), ""); err == nil {
		add(h)
	}
	if h, err := readValue(winreg.CLASSES_ROOT, ext.String(), ""); err == nil {
		add(h)
	}

	// "Open with" MRU ProgIds: value names are the handlers.
	for _, name := range valueNames(winreg.CURRENT_USER, fileExtsPath+`\`+ext.String()+`\OpenWithProgids`) {
		add(assoc.HandlerID(name))
	}
	for _, name := range valueNames(winreg.CLASSES_ROOT, ext.String()+`\OpenWithProgids`) {
		add(assoc.HandlerID(name))
	}

	// OpenWithList stores executable names; they register under
	// Applications\<exe>.
	for _, exe := range stringValues(winreg.CURRENT_USER, fileExtsPath+`\`+ext.String()+`\OpenWithList`) {
		add(assoc.HandlerID(`Applications\` + exe))
	}
	for _, exe := range stringValues(winreg.CLASSES_ROOT, ext.String()+`\OpenWithList`) {
		add(assoc.HandlerID(`Applications\` + exe))
	}

	// Registered applications that explicitly support this extension.
	if len(out) < limit {
		for _, app := range subKeyNames(winreg.CLASSES_ROOT, "Applications") {
			if len(out) >= limit {
				break
			}
			if hasValue(winreg.CLASSES_ROOT, `Applications\`+app+`\SupportedTypes`, ext.String()) {
				add(assoc.HandlerID(`Applications\` + app))
			}
		}
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// UserChoiceExtensions enumerates extensions for which the user has
// explicitly chosen a default at least once, i.e. FileExts entries
// carrying a UserChoice key. Used for one-step baseline import.
func UserChoiceExtensions() ([]assoc.Extension, error) {
	k, err := winreg.OpenKey(winreg.CURRENT_USER, fileExtsPath, winreg.QUERY_VALUE|winreg.ENUMERATE_SUB_KEYS)
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open FileExts: %w", err)
	}
	defer k.Close()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("enumerate FileExts: %w", err)
	}

	seen := make(map[assoc.Extension]bool)
	var out []assoc.Extension
	for _, name := range names {
		ext := assoc.NormalizeExt(name)
		if !ext.Valid() || seen[ext] {
			continue
		}
		if !keyExists(winreg.CURRENT_USER, userChoicePath(ext)) {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func keyExists(root winreg.Key, path string) bool {
	k, err := winreg.OpenKey(root, path, winreg.QUERY_VALUE)
	if err != nil {
		return false
	}
	k.Close()
	return true
}

func hasValue(root winreg.Key, path, name string) bool {
	k, err := winreg.OpenKey(root, path, winreg.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()
	_, _, err = k.GetValue(name, nil)
	return err == nil
}

func valueNames(root winreg.Key, path string) []string {
	k, err := winreg.OpenKey(root, path, winreg.QUERY_VALUE)
	if err != nil {
		return nil
	}
	defer k.Close()
	names, err := k.ReadValueNames(-1)
	if err != nil {
		return nil
	}
	var out []string
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

func stringValues(root winreg.Key, path string) []string {
	k, err := winreg.OpenKey(root, path, winreg.QUERY_VALUE)
	if err != nil {
		return nil
	}
	defer k.Close()
	names, err := k.ReadValueNames(-1)
	if err != nil {
		return nil
	}
	var out []string
	for _, n := range names {
		if v, _, err := k.GetStringValue(n); err == nil && v != "" {
			out = append(out, v)
		}
	}
	return out
}

func subKeyNames(root winreg.Key, path string) []string {
	k, err := winreg.OpenKey(root, path, winreg.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil
	}
	defer k.Close()
	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}
	return names
}
