// Package tray binds the resolved UI mode to the native status icon.
package tray

import (
	"context"
	"errors"
	"fmt"

	"github.com/EnterStudios/now-desktop/internal/menu"
	"github.com/EnterStudios/now-desktop/internal/onboarding"
	"github.com/EnterStudios/now-desktop/internal/session"
)

// Sharer uploads one dropped file and returns the URL it is served from.
type Sharer interface {
	Share(ctx context.Context, path string) (string, error)
}

// SharerFunc adapts a function to the Sharer interface.
type SharerFunc func(ctx context.Context, path string) (string, error)

// Share implements Sharer.
func (f SharerFunc) Share(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

// backend is the platform rendering of the icon: systray-backed where a
// toolkit is available, a headless stub elsewhere.
type backend interface {
	Run(ctx context.Context, p *Presenter) error
	SetHighlight(on bool)
	PopUpMenu(entries []menu.Entry)
	Quit()
}

// Presenter owns the single status icon binding for the process lifetime.
// Exactly one mode's behavior is wired at creation time and never rebound.
type Presenter struct {
	notify    func(title, text string)
	showError func(message string)

	mode    session.Mode
	entries []menu.Entry
	onb     *onboarding.Controller
	sharer  Sharer
	bound   bool

	backend backend
}

// NewPresenter creates an unbound presenter. notify and showError are the
// user-visible outcome channels for the drop flow.
func NewPresenter(notify func(title, text string), showError func(message string)) *Presenter {
	return &Presenter{
		notify:    notify,
		showError: showError,
		mode:      session.ModeUnresolved,
		backend:   newBackend(),
	}
}

// Bind wires one resolved mode to the icon. It is once-only, and binding an
// unresolved mode is refused outright: the icon must never carry unwired
// behavior.
func (p *Presenter) Bind(mode session.Mode, entries []menu.Entry, onb *onboarding.Controller, sharer Sharer) error {
	if p.bound {
		return errors.New("tray: icon behavior is already bound")
	}

	switch mode {
	case session.ModeOnboarding:
		if onb == nil {
			return errors.New("tray: onboarding mode requires a controller")
		}
	case session.ModeLoggedIn:
	default:
		return fmt.Errorf("tray: refusing to bind %s mode to the icon", mode)
	}

	p.mode = mode
	p.entries = entries
	p.onb = onb
	p.sharer = sharer
	p.bound = true
	return nil
}

// Mode returns the bound mode, or ModeUnresolved before Bind.
func (p *Presenter) Mode() session.Mode {
	return p.mode
}

// Run creates the native icon and blocks until it exits or ctx is canceled.
// Calling it before Bind is a programming error, reported instead of raced.
func (p *Presenter) Run(ctx context.Context) error {
	if !p.bound {
		return errors.New("tray: refusing to create the icon before session resolution")
	}
	return p.backend.Run(ctx, p)
}

// HandleDrop accepts paths dropped onto the icon. Only logged-in mode shares;
// more than one path is rejected with a user-visible error and zero share
// calls.
func (p *Presenter) HandleDrop(ctx context.Context, paths []string) {
	if p.mode != session.ModeLoggedIn || p.sharer == nil {
		return
	}
	if len(paths) == 0 {
		return
	}
	if len(paths) > 1 {
		p.showError("It is only possible to share one file or directory at a time.")
		return
	}

	url, err := p.sharer.Share(ctx, paths[0])
	if err != nil {
		p.showError(fmt.Sprintf("Failed to share %s: %v", paths[0], err))
		return
	}
	p.notify("Sharing Complete", url+" is now online.")
}

// SetHighlight drives the icon's highlight indicator.
func (p *Presenter) SetHighlight(on bool) {
	p.backend.SetHighlight(on)
}

// PopUpMenu shows (or, with nil, dismisses) a transient context menu.
func (p *Presenter) PopUpMenu(entries []menu.Entry) {
	p.backend.PopUpMenu(entries)
}

// Quit asks the icon to exit, unwinding Run.
func (p *Presenter) Quit() {
	p.backend.Quit()
}
