package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/tyleryates/cookie-tracker-sub004/internal/api"
	"github.com/tyleryates/cookie-tracker-sub004/internal/importer"
	"github.com/tyleryates/cookie-tracker-sub004/internal/repository"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("sync-on-start", true, "Run a season sync before accepting requests")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the unified dataset over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	syncOnStart, _ := cmd.Flags().GetBool("sync-on-start")

	log.Printf("Initializing database at %s", cfg.Storage.DBPath)
	db, err := repository.InitDB(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("init db: %w", err)
	}
	defer db.Close()

	buildRepo := repository.NewBuildRepo(db)
	warningRepo := repository.NewWarningRepo(db)
	importerSvc := importer.NewService(cfg.Season.TroopID, cfg.Season.ScoutCountOverride)

	router, handlers := api.NewRouter(buildRepo, warningRepo, importerSvc, cfg.Season.DataDir)

	if syncOnStart {
		if _, err := handlers.Sync(); err != nil {
			log.Printf("WARNING: startup sync failed: %v", err)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Cookie season tracker")
	log.Printf("Listening on http://localhost%s", addr)
	log.Printf("API base: http://localhost%s/api/v1", addr)
	log.Printf("")
	log.Printf("Endpoints:")
	log.Printf("  POST   /api/v1/sync")
	log.Printf("  GET    /api/v1/dataset")
	log.Printf("  GET    /api/v1/scouts")
	log.Printf("  GET    /api/v1/scouts/{id}")
	log.Printf("  GET    /api/v1/warnings")
	log.Printf("  GET    /api/v1/transfers/breakdowns")
	log.Printf("  GET    /api/v1/health")
	log.Printf("  GET    /api/v1/builds")
	log.Printf("  GET    /api/v1/dashboard")
	log.Printf("  GET    /metrics")

	return http.ListenAndServe(addr, router)
}
