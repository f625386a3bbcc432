// Package models defines the data types shared across now-desktop.
package models

// Deployment is an immutable snapshot of a hosted deployment, fetched once
// per catalog refresh. Identity is UID.
type Deployment struct {
	UID     string `json:"uid"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Created int64  `json:"created"` // unix milliseconds
}
