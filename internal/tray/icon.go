package tray

import _ "embed"

// Icon images for the two highlight states.
var (
	//go:embed icon.png
	iconData []byte

	//go:embed icon_highlight.png
	iconHighlightData []byte
)
