package models

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// TelemetryConfig holds settings for anonymous usage reporting.
// Reporting is off unless the user opts in.
type TelemetryConfig struct {
	Enabled    bool   `yaml:"enabled"`
	DistinctID string `yaml:"distinct_id,omitempty"`
}

// Settings represents global application settings.
// This corresponds to ~/.now-desktop/settings.yaml.
type Settings struct {
	Version       int                 `yaml:"version"`
	APIURL        string              `yaml:"api_url"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		APIURL:  "https://api.zeit.co",
		Notifications: NotificationsConfig{
			Enabled: true,
		},
		Telemetry: TelemetryConfig{
			Enabled: false,
		},
	}
}
