package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tyleryates/cookie-tracker-sub004/internal/importer"
	"github.com/tyleryates/cookie-tracker-sub004/internal/repository"
)

// NewRouter creates the Chi router with all API routes mounted.
// The returned Handlers value is also the sync entry point for the CLI.
func NewRouter(
	buildRepo *repository.BuildRepo,
	warningRepo *repository.WarningRepo,
	importerSvc *importer.Service,
	dataDir string,
) (http.Handler, *Handlers) {
	h := &Handlers{
		buildRepo:   buildRepo,
		warningRepo: warningRepo,
		importerSvc: importerSvc,
		dataDir:     dataDir,
	}

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SetHeader("Content-Type", "application/json"))

		r.Post("/sync", h.TriggerSync)

		r.Get("/dataset", h.GetDataset)
		r.Get("/scouts", h.ListScouts)
		r.Get("/scouts/{id}", h.GetScout)
		r.Get("/warnings", h.ListWarnings)
		r.Get("/transfers/breakdowns", h.GetTransferBreakdowns)
		r.Get("/health", h.GetHealthChecks)
		r.Get("/builds", h.ListBuilds)
		r.Get("/dashboard", h.GetDashboard)
	})

	return r, h
}
