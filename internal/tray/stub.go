//go:build !cgo && !windows
// +build !cgo,!windows

package tray

import (
	"context"
	"errors"

	"github.com/EnterStudios/now-desktop/internal/menu"
)

// stubBackend stands in on hosts without a tray toolkit.
type stubBackend struct{}

func newBackend() backend {
	return &stubBackend{}
}

func (b *stubBackend) Run(context.Context, *Presenter) error {
	return errors.New("tray: status icon is unavailable without cgo support")
}

func (b *stubBackend) SetHighlight(bool) {}

func (b *stubBackend) PopUpMenu([]menu.Entry) {}

func (b *stubBackend) Quit() {}
