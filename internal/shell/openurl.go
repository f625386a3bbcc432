package shell

import (
	"log"
	"net/url"
	"os/exec"
	"runtime"
)

// OpenExternal opens a URL in the user's default browser. The launch is
// fire-and-forget; the OS owns the browser process lifecycle.
func (*Desktop) OpenExternal(raw string) {
	if raw == "" {
		return
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		log.Printf("Refusing to open malformed URL %q: %v", raw, err)
		return
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", raw)
	case "darwin":
		cmd = exec.Command("open", raw)
	default:
		cmd = exec.Command("xdg-open", raw)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open %s: %v", raw, err)
	}
}
