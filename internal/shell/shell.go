// Package shell wraps the native desktop collaborators: external browser,
// clipboard, notifications, and dialogs.
package shell

import (
	"errors"
	"log"

	"github.com/atotto/clipboard"
	"github.com/gen2brain/beeep"
	"github.com/ncruces/zenity"
)

const dialogTitle = "Now"

// Desktop provides the real implementations backed by the host OS.
type Desktop struct {
	notifications bool
}

// NewDesktop creates the desktop shell. When notifications is false, Notify
// becomes a log line instead of a desktop notification.
func NewDesktop(notifications bool) *Desktop {
	return &Desktop{notifications: notifications}
}

// CopyToClipboard places text on the system clipboard.
func (*Desktop) CopyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// Notify shows a desktop notification. Failures are logged and swallowed;
// notifications are never load-bearing.
func (d *Desktop) Notify(title, text string) {
	if !d.notifications {
		log.Printf("%s: %s", title, text)
		return
	}
	if err := beeep.Notify(title, text, ""); err != nil {
		log.Printf("Failed to show notification %q: %v", title, err)
	}
}

// Confirm shows a modal question dialog and returns the index of the chosen
// button. The first button is the default; index 0 is the only affirmative
// outcome, everything else (including dismissing the dialog) maps to 1.
func (*Desktop) Confirm(title, message string, buttons []string) int {
	ok, cancel := "OK", "Cancel"
	if len(buttons) > 0 {
		ok = buttons[0]
	}
	if len(buttons) > 1 {
		cancel = buttons[1]
	}

	err := zenity.Question(message,
		zenity.Title(title),
		zenity.OKLabel(ok),
		zenity.CancelLabel(cancel),
	)
	if err == nil {
		return 0
	}
	if !errors.Is(err, zenity.ErrCanceled) {
		log.Printf("Confirm dialog failed: %v", err)
	}
	return 1
}

// Alert shows a modal error dialog.
func (*Desktop) Alert(message string) {
	if err := zenity.Error(message, zenity.Title(dialogTitle)); err != nil {
		log.Printf("Failed to show error dialog: %v (message was: %s)", err, message)
	}
}
