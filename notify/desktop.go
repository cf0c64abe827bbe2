package notify

import (
	"github.com/gen2brain/beeep"
)

// Desktop delivers notifications via the platform notification service.
type Desktop struct{}

// NewDesktop creates a desktop notifier.
func NewDesktop() Desktop {
	return Desktop{}
}

func (Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}
