package config

import (
	"github.com/EnterStudios/now-desktop/internal/models"
)

// authFile mirrors ~/.now-desktop/auth.yaml. The session lives under
// session.user; an absent file or absent user means logged out.
type authFile struct {
	Session struct {
		User *models.Session `yaml:"user,omitempty"`
	} `yaml:"session"`
}

// LoadSession reads the persisted session. A missing auth file or a missing
// user entry is not an error: it is the valid logged-out state, reported as
// (nil, nil).
func LoadSession() (*models.Session, error) {
	path, err := GlobalAuthFile()
	if err != nil {
		return nil, err
	}
	if !FileExists(path) {
		return nil, nil
	}

	var auth authFile
	if err := LoadYAML(path, &auth); err != nil {
		return nil, err
	}
	if auth.Session.User == nil || auth.Session.User.Token == "" {
		return nil, nil
	}
	return auth.Session.User, nil
}

// SaveSession persists the session to ~/.now-desktop/auth.yaml.
// The file holds a credential, so it is written with owner-only permissions.
func SaveSession(session *models.Session) error {
	path, err := GlobalAuthFile()
	if err != nil {
		return err
	}
	var auth authFile
	auth.Session.User = session
	return SaveYAML(path, &auth, 0o600)
}

// ClearSession removes the persisted session, returning the store to the
// logged-out state. Clearing an already-absent session is a no-op.
func ClearSession() error {
	path, err := GlobalAuthFile()
	if err != nil {
		return err
	}
	if !FileExists(path) {
		return nil
	}
	var auth authFile
	return SaveYAML(path, &auth, 0o600)
}

// Store adapts the package-level session accessors to the interface consumed
// by the session controller.
type Store struct{}

// NewStore returns a Store reading from the global auth file.
func NewStore() *Store {
	return &Store{}
}

// Session returns the persisted session, or nil when logged out.
func (*Store) Session() (*models.Session, error) {
	return LoadSession()
}
