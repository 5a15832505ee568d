package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
	"github.com/tyleryates/cookie-tracker-sub004/internal/importer"
	"github.com/tyleryates/cookie-tracker-sub004/internal/repository"
	"github.com/tyleryates/cookie-tracker-sub004/internal/unify"
)

// Handlers groups all HTTP handler methods and their dependencies.
// The latest dataset is held in memory behind a read lock; Sync swaps
// it wholesale, so readers always see a complete build.
type Handlers struct {
	buildRepo   *repository.BuildRepo
	warningRepo *repository.WarningRepo
	importerSvc *importer.Service
	dataDir     string

	mu      sync.RWMutex
	dataset *domain.UnifiedDataset
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[api] encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

func (h *Handlers) current() *domain.UnifiedDataset {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dataset
}

// setDataset installs a freshly built dataset.
func (h *Handlers) setDataset(ds *domain.UnifiedDataset) {
	h.mu.Lock()
	h.dataset = ds
	h.mu.Unlock()
	buildWarnings.Set(float64(len(ds.Warnings)))
	scoutsResolved.Set(float64(ds.Metadata.ScoutCount))
}

// Sync reloads the season directory, runs the engine and persists the
// result. Exposed for both the HTTP trigger and CLI startup.
func (h *Handlers) Sync() (*domain.UnifiedDataset, error) {
	ds, err := h.importerSvc.LoadSeason(h.dataDir)
	if err != nil {
		buildFailures.Inc()
		return nil, err
	}

	dataset, err := unify.Build(ds.Freeze())
	if err != nil {
		buildFailures.Inc()
		return nil, err
	}
	buildsTotal.Inc()

	buildID, err := h.buildRepo.Save(dataset)
	if err != nil {
		// Persistence trouble should not hide a good build.
		log.Printf("[api] WARNING: failed to persist build: %v", err)
	} else if _, err := h.warningRepo.BulkInsert(buildID, dataset.Warnings); err != nil {
		log.Printf("[api] WARNING: failed to persist warnings for %s: %v", buildID, err)
	}

	h.setDataset(dataset)
	log.Printf("[api] Sync complete: %d scouts, %d orders, %d warnings",
		dataset.Metadata.ScoutCount, dataset.Metadata.OrderCount, len(dataset.Warnings))
	return dataset, nil
}

// --- handlers ---

func (h *Handlers) TriggerSync(w http.ResponseWriter, r *http.Request) {
	ds, err := h.Sync()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ds.Metadata)
}

func (h *Handlers) GetDataset(w http.ResponseWriter, r *http.Request) {
	ds := h.current()
	if ds == nil {
		writeError(w, http.StatusNotFound, "no build available; POST /api/v1/sync first")
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

func (h *Handlers) ListScouts(w http.ResponseWriter, r *http.Request) {
	ds := h.current()
	if ds == nil {
		writeError(w, http.StatusNotFound, "no build available")
		return
	}
	writeJSON(w, http.StatusOK, ds.Scouts)
}

func (h *Handlers) GetScout(w http.ResponseWriter, r *http.Request) {
	ds := h.current()
	if ds == nil {
		writeError(w, http.StatusNotFound, "no build available")
		return
	}
	id := chi.URLParam(r, "id")
	s, ok := ds.Scouts[id]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown scout: "+id)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handlers) ListWarnings(w http.ResponseWriter, r *http.Request) {
	ds := h.current()
	if ds == nil {
		writeError(w, http.StatusNotFound, "no build available")
		return
	}
	wt := domain.WarningType(r.URL.Query().Get("type"))
	if wt == "" {
		writeJSON(w, http.StatusOK, ds.Warnings)
		return
	}
	filtered := []domain.Warning{}
	for _, warning := range ds.Warnings {
		if warning.Type == wt {
			filtered = append(filtered, warning)
		}
	}
	writeJSON(w, http.StatusOK, filtered)
}

func (h *Handlers) GetTransferBreakdowns(w http.ResponseWriter, r *http.Request) {
	ds := h.current()
	if ds == nil {
		writeError(w, http.StatusNotFound, "no build available")
		return
	}
	writeJSON(w, http.StatusOK, ds.TransferBreakdowns)
}

func (h *Handlers) GetHealthChecks(w http.ResponseWriter, r *http.Request) {
	ds := h.current()
	if ds == nil {
		writeError(w, http.StatusNotFound, "no build available")
		return
	}
	writeJSON(w, http.StatusOK, ds.Metadata.HealthChecks)
}

func (h *Handlers) ListBuilds(w http.ResponseWriter, r *http.Request) {
	limit := parseIntDefault(r.URL.Query().Get("limit"), 50)
	builds, err := h.buildRepo.List(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, builds)
}

// GetDashboard returns the troop-level summary the presentation layer
// renders on its landing view.
func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ds := h.current()
	if ds == nil {
		writeError(w, http.StatusNotFound, "no build available")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"troopId":      ds.TroopID,
		"troopTotals":  ds.TroopTotals,
		"siteOrders":   ds.SiteOrders,
		"cookieShare":  ds.CookieShare,
		"healthChecks": ds.Metadata.HealthChecks,
		"builtAt":      ds.Metadata.BuiltAt,
		"scoutCount":   ds.Metadata.ScoutCount,
		"orderCount":   ds.Metadata.OrderCount,
	})
}
