// Package cli implements the now-desktop command tree.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "now-desktop",
	Short: "Status-bar agent for your Now deployments",
	Long: `now-desktop lives in the status bar and keeps your Now deployments one
click away: open them in the browser, copy their URLs, share files by
dropping them on the icon, or delete them.`,
	RunE: runAgent,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(versionCmd)
}
