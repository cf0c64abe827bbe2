package assoc

import "context"

// Reader reports the default handler that is currently in effect for
// an extension. Implementations must return the same value the
// operating system resolves when a file of that extension is opened,
// i.e. honoring the per-user override store before the plain default.
type Reader interface {
	// CurrentHandler returns the effective handler for ext.
	// When the extension has no association at all, it returns a
	// *ReadError with kind ReadNotFound.
	CurrentHandler(ctx context.Context, ext Extension) (HandlerID, error)
}

// Restorer resets an extension's default handler to a target identity.
// The write sequence is a best-effort compensating transaction: the
// plain default record is set first, then the protected per-user
// override is removed, then the shell is notified. Implementations
// must never write outside those records.
type Restorer interface {
	// Restore sets ext's default handler to target. A missing
	// override record is not an error.
	Restore(ctx context.Context, ext Extension, target HandlerID) error
}
