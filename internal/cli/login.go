package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EnterStudios/now-desktop/internal/config"
	"github.com/EnterStudios/now-desktop/internal/models"
)

var (
	loginToken string
	loginEmail string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a session token for the agent",
	Long: `Stores the token and email the status-bar agent uses. Create a token in
your account settings, then restart a running agent to pick it up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginToken == "" {
			return errors.New("missing --token")
		}
		if loginEmail == "" {
			return errors.New("missing --email")
		}

		sess := &models.Session{Token: loginToken, Email: loginEmail}
		if err := config.SaveSession(sess); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		fmt.Printf("Logged in as %s\n", loginEmail)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ClearSession(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", "API token")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
}
