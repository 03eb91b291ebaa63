package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Sathish182603/Gleam-Heaven/internal/appcontext"
	"github.com/Sathish182603/Gleam-Heaven/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gleam-heaven",
	Short: "Gleam Heaven jewelry storefront backend",
	Long: `Gleam Heaven serves the jewelry storefront API: live metal rates,
catalog with price snapshots, carts, likes, reviews and custom design requests.

Configuration is read from .env (or --config) and the environment.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			return os.Setenv("CONFIG_FILE", configFile)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to env config file (default: .env)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(bootstrapAdminCmd)
}

// @title Gleam Heaven API
// @version 1.0
// @description 珠寶電商後端: 金屬牌價, 商品, 購物車, 評論與客製設計
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token. Example: "Bearer {token}"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp 所有子命令共用的初始化
func newApp() (*appcontext.ApplicationContext, error) {
	return appcontext.NewApplicationContext(config.GetConfig())
}

// withApp 一次性命令, 結束後關閉連線
func withApp(fn func(app *appcontext.ApplicationContext) error) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Shutdown(context.Background())
	return fn(app)
}
