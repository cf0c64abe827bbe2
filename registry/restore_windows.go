//go:build windows

package registry

import (
	"context"
	"fmt"
	"time"

	winreg "golang.org/x/sys/windows/registry"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

type winRestorer struct{}

// NewRestorer returns the Windows association restorer.
func NewRestorer() assoc.Restorer {
	return winRestorer{}
}

// Restore runs the restore sequence against the live registry:
// HKCU\Software\Classes\<ext> default value for step 1, the FileExts
// UserChoice key for step 2, SHChangeNotify for step 3. Ordering and
// failure rules are documented on runRestore.
func (winRestorer) Restore(ctx context.Context, ext assoc.Extension, target assoc.HandlerID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ext = assoc.NormalizeExt(ext.String())
	target = assoc.NormalizeHandler(target.String())
	if !ext.Valid() || target.IsZero() {
		return assoc.NewRestoreError(ext, assoc.RestoreWriteFailed,
			fmt.Errorf("invalid restore arguments: ext=%q target=%q", ext, target))
	}

	return runRestore(ext, restoreSteps{
		setDefault:     func() error { return setClassesDefault(ext, target) },
		deleteOverride: func() error { return deleteKeyTree(winreg.CURRENT_USER, userChoicePath(ext)) },
		broadcast:      broadcastAssocChanged,
	})
}

// setClassesDefault writes the per-user plain default handler record.
func setClassesDefault(ext assoc.Extension, target assoc.HandlerID) error {
	k, _, err := winreg.CreateKey(winreg.CURRENT_USER, classesExtPath(ext), winreg.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open %s: %w", classesExtPath(ext), err)
	}
	defer k.Close()

	if err := k.SetStringValue("", target.String()); err != nil {
		return fmt.Errorf("set default value: %w", err)
	}
	return nil
}

// deleteKeyTree recursively deletes a key and its children. A missing
// key is not an error. Concurrent shell activity can briefly repopulate
// a key between enumeration and deletion, so the final delete retries.
func deleteKeyTree(root winreg.Key, path string) error {
	k, err := winreg.OpenKey(root, path, winreg.QUERY_VALUE|winreg.ENUMERATE_SUB_KEYS)
	if err != nil {
		if isAbsent(err) {
			return nil
		}
		return err
	}
	names, err := k.ReadSubKeyNames(-1)
	k.Close()
	if err == nil {
		for _, name := range names {
			if err := deleteKeyTree(root, path+`\`+name); err != nil {
				return err
			}
		}
	}

	err = winreg.DeleteKey(root, path)
	for retries := 0; err != nil && !isAbsent(err) && retries < 3; retries++ {
		time.Sleep(50 * time.Millisecond)
		err = winreg.DeleteKey(root, path)
	}
	if err != nil && !isAbsent(err) {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}
