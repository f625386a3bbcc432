// Package session decides which top-level UI mode the agent presents.
package session

import (
	"context"
	"log"

	"github.com/EnterStudios/now-desktop/internal/models"
)

// Mode is the top-level UI mode bound to the status icon.
type Mode int

// Modes. Unresolved is the only initial state; the icon must not exist while
// in it. Once resolved, the mode is terminal for the process lifetime.
const (
	ModeUnresolved Mode = iota
	ModeOnboarding
	ModeLoggedIn
)

func (m Mode) String() string {
	switch m {
	case ModeOnboarding:
		return "onboarding"
	case ModeLoggedIn:
		return "logged-in"
	default:
		return "unresolved"
	}
}

// Store provides read access to the persisted session.
type Store interface {
	Session() (*models.Session, error)
}

// Catalog fetches the ordered deployment list for a session token.
type Catalog interface {
	Deployments(ctx context.Context, token string) ([]models.Deployment, error)
}

// Resolution is the outcome of session resolution. Session and Deployments
// are set only for ModeLoggedIn; an empty Deployments slice is a valid
// logged-in state.
type Resolution struct {
	Mode        Mode
	Session     *models.Session
	Deployments []models.Deployment
}

// Controller validates the persisted session against the API and picks the
// UI mode.
type Controller struct {
	store   Store
	catalog Catalog
}

// NewController creates a session controller.
func NewController(store Store, catalog Catalog) *Controller {
	return &Controller{store: store, catalog: catalog}
}

// Resolve determines the tray mode. Any doubt about session validity routes
// to onboarding rather than presenting a broken logged-in menu; errors on
// that path are logged, never surfaced as dialogs. Resolve must complete
// before the native icon is instantiated.
func (c *Controller) Resolve(ctx context.Context) Resolution {
	sess, err := c.store.Session()
	if err != nil {
		log.Printf("Failed to read session: %v; starting onboarding", err)
		return Resolution{Mode: ModeOnboarding}
	}
	if sess == nil || sess.Token == "" {
		return Resolution{Mode: ModeOnboarding}
	}

	deployments, err := c.catalog.Deployments(ctx, sess.Token)
	if err != nil {
		log.Printf("Deployment fetch failed: %v; degrading to onboarding", err)
		return Resolution{Mode: ModeOnboarding}
	}

	return Resolution{Mode: ModeLoggedIn, Session: sess, Deployments: deployments}
}
