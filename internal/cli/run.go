package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/EnterStudios/now-desktop/internal/api"
	"github.com/EnterStudios/now-desktop/internal/config"
	"github.com/EnterStudios/now-desktop/internal/menu"
	"github.com/EnterStudios/now-desktop/internal/onboarding"
	"github.com/EnterStudios/now-desktop/internal/session"
	"github.com/EnterStudios/now-desktop/internal/shell"
	"github.com/EnterStudios/now-desktop/internal/telemetry"
	"github.com/EnterStudios/now-desktop/internal/tray"
)

// onboardingURL is the page the onboarding window presents.
const onboardingURL = "https://zeit.co/now"

func runAgent(cmd *cobra.Command, args []string) error {
	log.SetPrefix("[now-desktop] ")
	log.SetFlags(log.Ldate | log.Ltime)

	if err := config.EnsureGlobalDir(); err != nil {
		return fmt.Errorf("failed to create global directory: %w", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reporter := telemetry.New(settings)
	defer reporter.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	desktop := shell.NewDesktop(settings.Notifications.Enabled)
	client := api.NewClient(settings.APIURL)

	// The session must be resolved before the icon exists; an icon with
	// unwired click handlers is the one race this app cannot afford.
	controller := session.NewController(config.NewStore(), client)
	res := controller.Resolve(ctx)
	log.Printf("Session resolved to %s mode", res.Mode)
	reporter.Capture("mode_resolved", map[string]interface{}{"mode": res.Mode.String()})

	presenter := tray.NewPresenter(desktop.Notify, desktop.Alert)

	switch res.Mode {
	case session.ModeLoggedIn:
		err = bindLoggedIn(ctx, presenter, client, reporter, desktop, res)
	case session.ModeOnboarding:
		win := shell.NewBrowserWindow(desktop, onboardingURL)
		onb := onboarding.New(win, presenter, presenter.Quit)
		err = presenter.Bind(res.Mode, nil, onb, nil)
	}
	if err != nil {
		return err
	}

	if watcher, werr := config.NewWatcher(func() {
		log.Printf("Login details changed on disk; restart to apply")
		desktop.Notify("Login Changed", "Your login details changed. Restart Now to apply them.")
	}); werr != nil {
		log.Printf("Failed to create config watcher: %v", werr)
	} else if werr := watcher.Start(); werr != nil {
		log.Printf("Failed to watch configuration: %v", werr)
		watcher.Close()
	} else {
		defer watcher.Close()
	}

	reporter.Capture("app_started", nil)

	if err := presenter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		// No icon means no usable UI, but the process stays alive so the
		// config watcher and logs keep working until the user intervenes.
		desktop.Alert(fmt.Sprintf("Failed to create the status icon: %v", err))
		<-ctx.Done()
	}
	return nil
}

func bindLoggedIn(ctx context.Context, presenter *tray.Presenter, client *api.Client, reporter *telemetry.Reporter, desktop *shell.Desktop, res session.Resolution) error {
	token := res.Session.Token

	actions := menu.Actions{
		OpenExternal:    desktop.OpenExternal,
		CopyToClipboard: desktop.CopyToClipboard,
		Notify:          desktop.Notify,
		Confirm:         desktop.Confirm,
		ShowError:       desktop.Alert,
		DeleteDeployment: func(uid string) error {
			if err := client.DeleteDeployment(ctx, token, uid); err != nil {
				return err
			}
			reporter.Capture("deployment_deleted", nil)
			return nil
		},
		FormatDate: formatDate,
	}

	sharer := tray.SharerFunc(func(ctx context.Context, path string) (string, error) {
		url, err := client.Share(ctx, token, path)
		if err == nil {
			reporter.Capture("file_shared", nil)
		}
		return url, err
	})

	entries := menu.Build(res.Deployments, actions)
	log.Printf("Loaded %d deployments for %s", len(entries), res.Session.Email)
	return presenter.Bind(res.Mode, entries, nil, sharer)
}

func formatDate(millis int64) string {
	return time.UnixMilli(millis).Local().Format("Jan 2, 2006 at 3:04 PM")
}
