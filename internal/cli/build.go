package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tyleryates/cookie-tracker-sub004/internal/importer"
	"github.com/tyleryates/cookie-tracker-sub004/internal/repository"
	"github.com/tyleryates/cookie-tracker-sub004/internal/unify"
)

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("data-dir", "d", "", "Season data directory (overrides config)")
	buildCmd.Flags().StringP("out", "o", "", "Write the unified dataset JSON to this file")
	buildCmd.Flags().Bool("no-db", false, "Skip persisting the build to the database")
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run a one-shot season build",
	Long: `Load the season data directory, run the unification engine once and
persist the resulting dataset. Warnings are printed per type; a build
only fails on I/O problems, never on record content.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = cfg.Season.DataDir
	}
	outPath, _ := cmd.Flags().GetString("out")
	noDB, _ := cmd.Flags().GetBool("no-db")

	svc := importer.NewService(cfg.Season.TroopID, cfg.Season.ScoutCountOverride)
	ds, err := svc.LoadSeason(dataDir)
	if err != nil {
		return fmt.Errorf("load season: %w", err)
	}

	dataset, err := unify.Build(ds.Freeze())
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	log.Printf("[build] troop %s: %d scouts, %d orders, %d warnings",
		dataset.TroopID, dataset.Metadata.ScoutCount, dataset.Metadata.OrderCount, len(dataset.Warnings))
	hc := dataset.Metadata.HealthChecks
	if hc.TotalWarnings > 0 {
		log.Printf("[build] health: %d unknown order types, %d unknown payment methods, %d unknown transfer types",
			hc.UnknownOrderTypes, hc.UnknownPaymentMethods, hc.UnknownTransferTypes)
	}

	if outPath != "" {
		blob, err := json.MarshalIndent(dataset, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal dataset: %w", err)
		}
		if err := os.WriteFile(outPath, blob, 0644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		log.Printf("[build] dataset written to %s", outPath)
	}

	if !noDB {
		db, err := repository.InitDB(cfg.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("init db: %w", err)
		}
		defer db.Close()

		buildID, err := repository.NewBuildRepo(db).Save(dataset)
		if err != nil {
			return fmt.Errorf("persist build: %w", err)
		}
		if _, err := repository.NewWarningRepo(db).BulkInsert(buildID, dataset.Warnings); err != nil {
			return fmt.Errorf("persist warnings: %w", err)
		}
		log.Printf("[build] persisted as build %s", buildID)
	}

	return nil
}
