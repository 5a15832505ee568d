// Package cli implements the cookietrack command tree.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tyleryates/cookie-tracker-sub004/internal/config"
)

var (
	cfgPath string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cookietrack",
	Short: "Troop cookie-season reconciliation",
	Long: `cookietrack merges a troop's cookie-season records from the DC
storefront export, the SC inventory/financial API and manual
spreadsheet rows into one consistent ledger: per-scout totals,
inventory, proceeds and troop-wide transfer breakdowns, with every
anomaly surfaced as a warning.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env file is optional; ignore its absence.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgPath)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "cookietrack.toml", "Path to the TOML config file")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
