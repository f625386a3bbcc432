package tray

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/EnterStudios/now-desktop/internal/menu"
	"github.com/EnterStudios/now-desktop/internal/onboarding"
	"github.com/EnterStudios/now-desktop/internal/session"
)

type fakeBackend struct {
	runs       int
	highlights []bool
	popups     [][]menu.Entry
	quits      int
}

func (b *fakeBackend) Run(context.Context, *Presenter) error { b.runs++; return nil }

func (b *fakeBackend) SetHighlight(on bool) { b.highlights = append(b.highlights, on) }

func (b *fakeBackend) PopUpMenu(entries []menu.Entry) { b.popups = append(b.popups, entries) }

func (b *fakeBackend) Quit() { b.quits++ }

type nullWindow struct{ visible bool }

func (w *nullWindow) Show() { w.visible = true }

func (w *nullWindow) Hide() { w.visible = false }

func (w *nullWindow) IsVisible() bool { return w.visible }

func (w *nullWindow) IsFocused() bool { return false }

func (w *nullWindow) Focus() {}

func (w *nullWindow) Destroy() {}

type outcome struct {
	notices []string
	errors  []string
}

func newTestPresenter() (*Presenter, *fakeBackend, *outcome) {
	out := &outcome{}
	p := NewPresenter(
		func(title, text string) { out.notices = append(out.notices, title+": "+text) },
		func(message string) { out.errors = append(out.errors, message) },
	)
	backend := &fakeBackend{}
	p.backend = backend
	return p, backend, out
}

func onboardingController(p *Presenter) *onboarding.Controller {
	return onboarding.New(&nullWindow{}, p, p.Quit)
}

func TestBindPreconditions(t *testing.T) {
	t.Run("unresolved mode is refused", func(t *testing.T) {
		p, _, _ := newTestPresenter()
		if err := p.Bind(session.ModeUnresolved, nil, nil, nil); err == nil {
			t.Fatalf("binding unresolved mode succeeded")
		}
		if p.Mode() != session.ModeUnresolved {
			t.Errorf("failed bind still changed the mode")
		}
	})

	t.Run("onboarding mode requires a controller", func(t *testing.T) {
		p, _, _ := newTestPresenter()
		if err := p.Bind(session.ModeOnboarding, nil, nil, nil); err == nil {
			t.Fatalf("onboarding bind without controller succeeded")
		}
	})

	t.Run("second bind is refused", func(t *testing.T) {
		p, _, _ := newTestPresenter()
		if err := p.Bind(session.ModeLoggedIn, nil, nil, nil); err != nil {
			t.Fatalf("first bind failed: %v", err)
		}
		if err := p.Bind(session.ModeOnboarding, nil, onboardingController(p), nil); err == nil {
			t.Fatalf("rebinding succeeded; the binding must be immutable")
		}
		if p.Mode() != session.ModeLoggedIn {
			t.Errorf("mode changed by refused rebind")
		}
	})
}

func TestRunRequiresResolution(t *testing.T) {
	p, backend, _ := newTestPresenter()

	if err := p.Run(context.Background()); err == nil {
		t.Fatalf("Run before Bind succeeded; the icon must not exist before resolution")
	}
	if backend.runs != 0 {
		t.Fatalf("backend ran %d times before resolution, want 0", backend.runs)
	}

	if err := p.Bind(session.ModeLoggedIn, nil, nil, nil); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run after bind failed: %v", err)
	}
	if backend.runs != 1 {
		t.Fatalf("backend runs = %d, want 1", backend.runs)
	}
}

func TestHandleDrop(t *testing.T) {
	type shareCall struct {
		path string
	}

	tests := []struct {
		name       string
		mode       session.Mode
		paths      []string
		shareErr   error
		wantShares int
		wantNotice int
		wantErrors int
	}{
		{
			name:       "single file is shared",
			mode:       session.ModeLoggedIn,
			paths:      []string{"/tmp/cat.png"},
			wantShares: 1,
			wantNotice: 1,
		},
		{
			name:       "multiple files are rejected without sharing",
			mode:       session.ModeLoggedIn,
			paths:      []string{"/tmp/a", "/tmp/b"},
			wantErrors: 1,
		},
		{
			name:  "empty drop is ignored",
			mode:  session.ModeLoggedIn,
			paths: nil,
		},
		{
			name:  "onboarding mode ignores drops",
			mode:  session.ModeOnboarding,
			paths: []string{"/tmp/cat.png"},
		},
		{
			name:       "share failure is surfaced",
			mode:       session.ModeLoggedIn,
			paths:      []string{"/tmp/cat.png"},
			shareErr:   errors.New("upload failed"),
			wantShares: 1,
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, out := newTestPresenter()

			var calls []shareCall
			sharer := SharerFunc(func(_ context.Context, path string) (string, error) {
				calls = append(calls, shareCall{path: path})
				if tt.shareErr != nil {
					return "", tt.shareErr
				}
				return "https://cat-1234.now.sh", nil
			})

			var err error
			if tt.mode == session.ModeOnboarding {
				err = p.Bind(tt.mode, nil, onboardingController(p), sharer)
			} else {
				err = p.Bind(tt.mode, nil, nil, sharer)
			}
			if err != nil {
				t.Fatalf("bind failed: %v", err)
			}

			p.HandleDrop(context.Background(), tt.paths)

			if len(calls) != tt.wantShares {
				t.Errorf("share calls = %d, want %d", len(calls), tt.wantShares)
			}
			if len(out.notices) != tt.wantNotice {
				t.Errorf("notifications = %v, want %d", out.notices, tt.wantNotice)
			}
			if len(out.errors) != tt.wantErrors {
				t.Errorf("errors = %v, want %d", out.errors, tt.wantErrors)
			}
			if tt.wantErrors == 1 && len(tt.paths) > 1 && !strings.Contains(out.errors[0], "one file") {
				t.Errorf("multi-drop error %q does not mention the one-file limit", out.errors[0])
			}
		})
	}
}

func TestPresenterImplementsOnboardingIcon(t *testing.T) {
	p, backend, _ := newTestPresenter()
	var icon onboarding.Icon = p

	icon.SetHighlight(true)
	icon.PopUpMenu([]menu.Entry{menu.Action("Quit", nil)})
	icon.PopUpMenu(nil)

	if len(backend.highlights) != 1 || !backend.highlights[0] {
		t.Errorf("highlights = %v, want [true]", backend.highlights)
	}
	if len(backend.popups) != 2 {
		t.Errorf("popups = %d, want 2", len(backend.popups))
	}
}
