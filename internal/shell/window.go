package shell

// BrowserWindow adapts the onboarding surface to hosts without an embedded
// window toolkit: showing it opens the onboarding page in the default
// browser, while visibility is tracked logically so the controller's state
// machine still drives the highlight.
type BrowserWindow struct {
	desktop *Desktop
	url     string
	visible bool
}

// NewBrowserWindow creates a window that opens url when shown.
func NewBrowserWindow(desktop *Desktop, url string) *BrowserWindow {
	return &BrowserWindow{desktop: desktop, url: url}
}

// Show marks the window visible and opens the onboarding page.
func (w *BrowserWindow) Show() {
	if w.visible {
		return
	}
	w.visible = true
	w.desktop.OpenExternal(w.url)
}

// Hide marks the window hidden. The browser tab is the user's to close.
func (w *BrowserWindow) Hide() {
	w.visible = false
}

// IsVisible reports the logical visibility.
func (w *BrowserWindow) IsVisible() bool {
	return w.visible
}

// IsFocused reports true whenever visible. Real focus lives in the browser
// and can't be observed, and reporting focused keeps a primary click
// toggling visibility instead of re-opening tabs.
func (w *BrowserWindow) IsFocused() bool {
	return w.visible
}

// Focus re-opens the onboarding page.
func (w *BrowserWindow) Focus() {
	w.desktop.OpenExternal(w.url)
}

// Destroy marks the window hidden; there is no native resource to release.
func (w *BrowserWindow) Destroy() {
	w.visible = false
}
