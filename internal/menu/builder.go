package menu

import (
	"fmt"

	"github.com/EnterStudios/now-desktop/internal/models"
)

// Actions bundles the capabilities a deployment menu needs. All of them are
// opaque collaborators; the builder never reaches for the network or the
// native shell directly.
type Actions struct {
	OpenExternal     func(url string)
	CopyToClipboard  func(text string) error
	Notify           func(title, text string)
	Confirm          func(title, message string, buttons []string) int
	ShowError        func(message string)
	DeleteDeployment func(uid string) error
	FormatDate       func(millis int64) string
}

// Build turns a deployment catalog into an ordered menu tree: one submenu per
// deployment, in catalog order. Given identical inputs the returned structure
// is identical; handlers capture only their own deployment.
func Build(deployments []models.Deployment, actions Actions) []Entry {
	entries := make([]Entry, 0, len(deployments))
	for _, d := range deployments {
		entries = append(entries, deploymentEntry(d, actions))
	}
	return entries
}

func deploymentEntry(d models.Deployment, a Actions) Entry {
	url := "https://" + d.URL
	return Submenu(d.Name,
		Action("Open in Browser...", func() {
			a.OpenExternal(url)
		}),
		Action("Copy URL to Clipboard", func() {
			copyURL(url, a)
		}),
		Separator(),
		Action("Delete...", func() {
			deleteDeployment(d, a)
		}),
		Separator(),
		Label("Created on "+a.FormatDate(d.Created)),
	)
}

func copyURL(url string, a Actions) {
	if err := a.CopyToClipboard(url); err != nil {
		a.ShowError(fmt.Sprintf("Could not copy the URL to the clipboard: %v", err))
		return
	}
	// The notification is a best-effort side effect; Notify never fails the
	// copy that already happened.
	a.Notify("Copied to Clipboard", url)
}

func deleteDeployment(d models.Deployment, a Actions) {
	// Index 0 ("Yes") is the only choice that authorizes deletion. Every
	// other outcome, including a dismissed dialog, cancels.
	choice := a.Confirm(
		"Delete "+d.Name,
		fmt.Sprintf("Are you sure you want to delete the deployment %q? This cannot be undone.", d.Name),
		[]string{"Yes", "Cancel"},
	)
	if choice != 0 {
		return
	}

	if err := a.DeleteDeployment(d.UID); err != nil {
		// The stale entry stays in the menu until the next refresh.
		a.ShowError(fmt.Sprintf("Failed to delete %s: %v", d.Name, err))
		return
	}
	a.Notify("Deployment Deleted", d.Name+" was removed from your account.")
}
