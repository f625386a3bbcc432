package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/EnterStudios/now-desktop/internal/models"
)

func setTempHome(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("temp home redirection uses $HOME")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadSessionAbsent(t *testing.T) {
	setTempHome(t)

	sess, err := LoadSession()
	if err != nil {
		t.Fatalf("LoadSession on missing file: %v (absence is not an error)", err)
	}
	if sess != nil {
		t.Fatalf("sess = %+v, want nil", sess)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	home := setTempHome(t)

	saved := &models.Session{Token: "tok-abc", Email: "u@example.com"}
	if err := SaveSession(saved); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	info, err := os.Stat(filepath.Join(home, GlobalDirName, AuthFileName))
	if err != nil {
		t.Fatalf("auth file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("auth file mode = %o, want 600", perm)
	}

	loaded, err := LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if loaded == nil || loaded.Token != "tok-abc" || loaded.Email != "u@example.com" {
		t.Fatalf("loaded = %+v, want %+v", loaded, saved)
	}
}

func TestClearSession(t *testing.T) {
	setTempHome(t)

	if err := ClearSession(); err != nil {
		t.Fatalf("ClearSession with no file: %v", err)
	}

	if err := SaveSession(&models.Session{Token: "tok", Email: "u@example.com"}); err != nil {
		t.Fatal(err)
	}
	if err := ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}

	sess, err := LoadSession()
	if err != nil {
		t.Fatal(err)
	}
	if sess != nil {
		t.Fatalf("session survived ClearSession: %+v", sess)
	}
}

func TestLoadSessionEmptyToken(t *testing.T) {
	setTempHome(t)

	if err := SaveSession(&models.Session{Email: "u@example.com"}); err != nil {
		t.Fatal(err)
	}

	sess, err := LoadSession()
	if err != nil {
		t.Fatal(err)
	}
	if sess != nil {
		t.Fatalf("tokenless session treated as logged in: %+v", sess)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	setTempHome(t)

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.APIURL == "" {
		t.Errorf("default settings missing API URL")
	}
	if !settings.Notifications.Enabled {
		t.Errorf("notifications should default on")
	}
	if settings.Telemetry.Enabled {
		t.Errorf("telemetry must default off")
	}
}
