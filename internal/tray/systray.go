//go:build cgo || windows
// +build cgo windows

package tray

import (
	"context"
	"runtime"

	"github.com/getlantern/systray"

	"github.com/EnterStudios/now-desktop/internal/menu"
	"github.com/EnterStudios/now-desktop/internal/session"
)

// systrayBackend renders the declarative menu tree against getlantern/systray.
type systrayBackend struct{}

func newBackend() backend {
	return &systrayBackend{}
}

func (b *systrayBackend) Run(ctx context.Context, p *Presenter) error {
	done := make(chan struct{})

	go systray.Run(func() {
		systray.SetIcon(iconData)
		if runtime.GOOS == "darwin" {
			systray.SetTemplateIcon(iconData, iconData)
		}
		systray.SetTooltip("Now")

		switch p.mode {
		case session.ModeLoggedIn:
			renderEntries(ctx, p.entries, nil)
			if len(p.entries) > 0 {
				systray.AddSeparator()
			}
		case session.ModeOnboarding:
			open := systray.AddMenuItem("Open Now", "Show the onboarding window")
			go clickLoop(ctx, open.ClickedCh, p.onb.PrimaryClick)
			systray.AddSeparator()
		}

		quit := systray.AddMenuItem("Quit Now", "Exit the application")
		go func() {
			select {
			case <-ctx.Done():
			case <-quit.ClickedCh:
			}
			if p.onb != nil {
				p.onb.Shutdown()
			}
			systray.Quit()
		}()
	}, func() {
		close(done)
	})

	select {
	case <-ctx.Done():
		systray.Quit()
		<-done
		return ctx.Err()
	case <-done:
		return nil
	}
}

func (b *systrayBackend) SetHighlight(on bool) {
	if on {
		systray.SetIcon(iconHighlightData)
	} else {
		systray.SetIcon(iconData)
	}
}

// PopUpMenu is a no-op on systray hosts: the secondary click already opens
// the context menu natively, which carries the same quit entry.
func (b *systrayBackend) PopUpMenu([]menu.Entry) {}

func (b *systrayBackend) Quit() {
	systray.Quit()
}

// renderEntries walks the tree in order. Menus are immutable for the process
// lifetime, so there is no re-render path.
func renderEntries(ctx context.Context, entries []menu.Entry, parent *systray.MenuItem) {
	for _, e := range entries {
		switch e.Kind {
		case menu.KindSeparator:
			if parent == nil {
				systray.AddSeparator()
			} else {
				// Submenus have no native separator; a disabled dash stands in.
				item := parent.AddSubMenuItem("—", "")
				item.Disable()
			}
		case menu.KindLabel:
			item := addItem(parent, e.Label)
			item.Disable()
		case menu.KindAction:
			item := addItem(parent, e.Label)
			go clickLoop(ctx, item.ClickedCh, e.Handler)
		case menu.KindSubmenu:
			item := addItem(parent, e.Label)
			renderEntries(ctx, e.Children, item)
		}
	}
}

func addItem(parent *systray.MenuItem, label string) *systray.MenuItem {
	if parent == nil {
		return systray.AddMenuItem(label, "")
	}
	return parent.AddSubMenuItem(label, "")
}

func clickLoop(ctx context.Context, ch <-chan struct{}, handler func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if handler != nil {
				handler()
			}
		}
	}
}
