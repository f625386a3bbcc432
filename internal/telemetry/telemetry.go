// Package telemetry reports opt-in, anonymous usage events.
package telemetry

import (
	"log"

	"github.com/google/uuid"
	"github.com/posthog/posthog-go"

	"github.com/EnterStudios/now-desktop/internal/buildinfo"
	"github.com/EnterStudios/now-desktop/internal/config"
	"github.com/EnterStudios/now-desktop/internal/models"
)

// apiKey is injected at build time via ldflags; with no key the reporter
// stays inert even when the user opted in.
var apiKey = ""

// Reporter enqueues usage events to PostHog. The zero-value-style disabled
// reporter is safe to call from anywhere.
type Reporter struct {
	client     posthog.Client
	distinctID string
}

// New creates a reporter honoring the telemetry settings. The first opted-in
// run mints a random distinct ID and persists it back to the settings file.
func New(settings *models.Settings) *Reporter {
	if !settings.Telemetry.Enabled || apiKey == "" {
		return &Reporter{}
	}

	if settings.Telemetry.DistinctID == "" {
		settings.Telemetry.DistinctID = uuid.NewString()
		if err := config.SaveSettings(settings); err != nil {
			log.Printf("Failed to persist telemetry ID: %v", err)
		}
	}

	return &Reporter{
		client:     posthog.New(apiKey),
		distinctID: settings.Telemetry.DistinctID,
	}
}

// Capture enqueues a single event. A disabled reporter drops it.
func (r *Reporter) Capture(event string, properties map[string]interface{}) {
	if r.client == nil {
		return
	}

	props := posthog.NewProperties().Set("version", buildinfo.Version)
	for k, v := range properties {
		props = props.Set(k, v)
	}

	if err := r.client.Enqueue(posthog.Capture{
		DistinctId: r.distinctID,
		Event:      event,
		Properties: props,
	}); err != nil {
		log.Printf("Failed to enqueue telemetry event %q: %v", event, err)
	}
}

// Close flushes pending events. Safe on a disabled reporter.
func (r *Reporter) Close() {
	if r.client == nil {
		return
	}
	if err := r.client.Close(); err != nil {
		log.Printf("Failed to flush telemetry: %v", err)
	}
}
