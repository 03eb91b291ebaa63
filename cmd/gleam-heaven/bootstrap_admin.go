package main

import (
	"context"
	"fmt"

	"github.com/Sathish182603/Gleam-Heaven/internal/appcontext"
	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string
)

// bootstrapAdminCmd creates the first administrator
var bootstrapAdminCmd = &cobra.Command{
	Use:   "bootstrap-admin",
	Short: "Create the first administrator",
	Long: `Create the first administrator account.

Only succeeds while no admin exists. An existing account with the same email is
promoted instead, provided the password matches. Later admins are promoted through
the admin API.`,
	RunE: runBootstrapAdmin,
}

func init() {
	bootstrapAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email (required)")
	bootstrapAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (required)")
	bootstrapAdminCmd.Flags().StringVar(&adminName, "name", "", "Display name (default: email local part)")
	bootstrapAdminCmd.MarkFlagRequired("email")
	bootstrapAdminCmd.MarkFlagRequired("password")
}

func runBootstrapAdmin(cmd *cobra.Command, args []string) error {
	return withApp(func(app *appcontext.ApplicationContext) error {
		user, err := app.RoleService.BootstrapAdmin(context.Background(), adminEmail, adminPassword, adminName)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin %s ready (id %s)\n", user.Email, user.ID)
		return nil
	})
}
