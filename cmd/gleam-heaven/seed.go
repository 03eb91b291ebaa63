package main

import (
	"context"
	"fmt"

	"github.com/Sathish182603/Gleam-Heaven/internal/appcontext"
	"github.com/Sathish182603/Gleam-Heaven/internal/config"
	"github.com/Sathish182603/Gleam-Heaven/internal/service"
	"github.com/spf13/cobra"
)

var seedFile string

// seedCmd loads the starter catalog
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed metal rates and the starter catalog",
	Long: `Seed metal rates and the starter catalog from a YAML file (SEED_FILE or --file).

Existing metal rates are never overwritten, and products are only created
when the catalog is empty, so the command is safe to run repeatedly.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Seed YAML path (default: SEED_FILE)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	return withApp(func(app *appcontext.ApplicationContext) error {
		path := seedFile
		if path == "" {
			path = app.Cf.SeedFile
		}
		seed, err := config.LoadSeedConfig(path)
		if err != nil {
			return fmt.Errorf("load seed file %s: %w", path, err)
		}

		result, err := service.SeedCatalog(context.Background(), app.Store, seed)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d metal rate(s), %d product(s) from %s\n",
			result.RatesCreated, result.ProductsCreated, path)
		return nil
	})
}
