package config

import (
	"testing"
	"time"

	"github.com/EnterStudios/now-desktop/internal/models"
)

func TestWatcherFiresOnAuthChange(t *testing.T) {
	setTempHome(t)
	if err := EnsureGlobalDir(); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := SaveSession(&models.Session{Token: "tok", Email: "u@example.com"}); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatalf("watcher never fired after auth file write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	setTempHome(t)
	if err := EnsureGlobalDir(); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Start(); err != nil {
		t.Fatal(err)
	}

	if err := SaveSettings(models.NewSettings()); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Fatalf("watcher fired for a non-auth file")
	case <-time.After(500 * time.Millisecond):
	}
}
