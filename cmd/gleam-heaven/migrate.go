package main

import (
	"github.com/Sathish182603/Gleam-Heaven/internal/appcontext"
	"github.com/spf13/cobra"
)

// migrateCmd manages the database schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long: `Apply or roll back database migrations.

With DB_DRIVER=postgres the SQL files under MIGRATION_URL are applied with golang-migrate.
With DB_DRIVER=sqlite the schema is created by gorm auto-migration and rollback is unavailable.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *appcontext.ApplicationContext) error { return app.Migrate() })
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *appcontext.ApplicationContext) error { return app.Rollback() })
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
