// Package onboarding owns the onboarding window's visibility and the status
// icon's highlight state.
package onboarding

import (
	"github.com/EnterStudios/now-desktop/internal/menu"
)

// Window is the native onboarding window, consumed as an opaque collaborator.
// Its close gesture is routed through HandleCloseRequested so the window can
// survive as hidden instead of being destroyed.
type Window interface {
	Show()
	Hide()
	IsVisible() bool
	IsFocused() bool
	Focus()
	Destroy()
}

// Icon is the slice of the status icon the controller drives: the highlight
// indicator and the small right-click menu. PopUpMenu(nil) dismisses.
type Icon interface {
	SetHighlight(on bool)
	PopUpMenu(entries []menu.Entry)
}

// Controller keeps the onboarding window, the icon highlight, and the
// right-click submenu in sync with user gestures. All methods run on the one
// event-driven control flow; nothing here needs a lock.
type Controller struct {
	win  Window
	icon Icon
	quit func()

	highlighted  bool
	submenuShown bool
	forceClose   bool
}

// New creates a controller for the given window and icon. quit is invoked
// from the right-click menu's only entry.
func New(win Window, icon Icon, quit func()) *Controller {
	return &Controller{win: win, icon: icon, quit: quit}
}

// Highlighted reports the current highlight state.
func (c *Controller) Highlighted() bool {
	return c.highlighted
}

// SubmenuShown reports whether the right-click quit menu is up.
func (c *Controller) SubmenuShown() bool {
	return c.submenuShown
}

// Show makes the window visible and turns the highlight on.
func (c *Controller) Show() {
	c.win.Show()
	c.setHighlight(true)
}

// Hide makes the window invisible and turns the highlight off. It is also the
// reinterpretation of the window's close gesture.
func (c *Controller) Hide() {
	c.win.Hide()
	c.setHighlight(false)
}

// ToggleHighlight flips the highlight independent of window visibility. Each
// call site toggles exactly once per event; no event may reach two call
// sites.
func (c *Controller) ToggleHighlight() {
	c.setHighlight(!c.highlighted)
}

// PrimaryClick handles the icon's primary click. A visible-but-unfocused
// window is only brought to focus; otherwise visibility flips and the
// highlight toggles once for this click. The caller must suppress the native
// default context menu for this click.
func (c *Controller) PrimaryClick() {
	if c.win.IsVisible() && !c.win.IsFocused() {
		c.win.Focus()
		return
	}

	if c.win.IsVisible() {
		c.win.Hide()
	} else {
		c.win.Show()
	}
	// Toggle for the click itself; the window calls are direct so the
	// Show/Hide assignments above don't fire a second highlight change.
	c.ToggleHighlight()
}

// SecondaryClick handles the icon's right click: it flips the quit-only
// submenu and, when the onboarding window is hidden, toggles the highlight.
func (c *Controller) SecondaryClick() {
	c.submenuShown = !c.submenuShown
	if c.submenuShown {
		c.icon.PopUpMenu(c.quitMenu())
	} else {
		c.icon.PopUpMenu(nil)
	}

	// Toggle for the submenu flip, but only while the window itself isn't
	// claiming the highlight.
	if !c.win.IsVisible() {
		c.ToggleHighlight()
	}
}

// HandleCloseRequested intercepts the window's close gesture. It returns true
// when the close may proceed, which only happens after Shutdown latched
// forceClose; otherwise the gesture becomes Hide.
func (c *Controller) HandleCloseRequested() bool {
	if c.forceClose {
		return true
	}
	c.Hide()
	return false
}

// HandleClosed reacts to the native closed event with a single highlight
// toggle.
func (c *Controller) HandleClosed() {
	c.ToggleHighlight()
}

// HandleMinimize reacts to the native minimize event with a single highlight
// toggle.
func (c *Controller) HandleMinimize() {
	c.ToggleHighlight()
}

// HandleRestore reacts to the native restore event with a single highlight
// toggle.
func (c *Controller) HandleRestore() {
	c.ToggleHighlight()
}

// Shutdown latches forceClose and destroys the window. It is invoked exactly
// once, by the application shutdown handler.
func (c *Controller) Shutdown() {
	c.forceClose = true
	c.win.Destroy()
}

func (c *Controller) setHighlight(on bool) {
	c.highlighted = on
	c.icon.SetHighlight(on)
}

func (c *Controller) quitMenu() []menu.Entry {
	return []menu.Entry{
		menu.Action("Quit", c.quit),
	}
}
