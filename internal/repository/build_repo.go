package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

// BuildSummary is one persisted build's summary row.
type BuildSummary struct {
	ID               string    `json:"id"`
	TroopID          string    `json:"troop_id"`
	BuiltAt          time.Time `json:"built_at"`
	ScoutCount       int       `json:"scout_count"`
	OrderCount       int       `json:"order_count"`
	WarningCount     int       `json:"warning_count"`
	PackagesCredited int       `json:"packages_credited"`
	ProceedsRate     float64   `json:"proceeds_rate"`
	ProceedsAmount   float64   `json:"proceeds_amount"`
}

// BuildRepo persists unified datasets. The full dataset is stored as a
// JSON blob alongside queryable summary columns; Load round-trips it
// without loss.
type BuildRepo struct {
	db *sql.DB
}

// NewBuildRepo creates a new build repository.
func NewBuildRepo(db *sql.DB) *BuildRepo {
	return &BuildRepo{db: db}
}

// Save persists a dataset and returns the new build id.
func (r *BuildRepo) Save(ds *domain.UnifiedDataset) (string, error) {
	blob, err := json.Marshal(ds)
	if err != nil {
		return "", fmt.Errorf("marshal dataset: %w", err)
	}

	id := uuid.NewString()
	_, err = r.db.Exec(`INSERT INTO builds
		(id, troop_id, built_at, scout_count, order_count, warning_count,
		 packages_credited, proceeds_rate, proceeds_amount, dataset)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ds.TroopID, ds.Metadata.BuiltAt,
		ds.Metadata.ScoutCount, ds.Metadata.OrderCount, len(ds.Warnings),
		ds.TroopTotals.PackagesCredited, ds.TroopTotals.ProceedsRate,
		ds.TroopTotals.ProceedsAmount, string(blob))
	if err != nil {
		return "", fmt.Errorf("insert build: %w", err)
	}
	return id, nil
}

// Load retrieves a persisted dataset by build id.
func (r *BuildRepo) Load(id string) (*domain.UnifiedDataset, error) {
	var blob string
	err := r.db.QueryRow(`SELECT dataset FROM builds WHERE id = ?`, id).Scan(&blob)
	if err != nil {
		return nil, fmt.Errorf("select build %s: %w", id, err)
	}

	var ds domain.UnifiedDataset
	if err := json.Unmarshal([]byte(blob), &ds); err != nil {
		return nil, fmt.Errorf("unmarshal dataset: %w", err)
	}
	return &ds, nil
}

// Latest retrieves the most recently built dataset, or nil when no
// build has been persisted yet.
func (r *BuildRepo) Latest() (*domain.UnifiedDataset, error) {
	var id string
	err := r.db.QueryRow(`SELECT id FROM builds ORDER BY built_at DESC, id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select latest build: %w", err)
	}
	return r.Load(id)
}

// List returns build summaries, newest first.
func (r *BuildRepo) List(limit int) ([]BuildSummary, error) {
	if limit < 1 {
		limit = 50
	}
	rows, err := r.db.Query(`SELECT id, troop_id, built_at, scout_count, order_count,
		warning_count, packages_credited, proceeds_rate, proceeds_amount
		FROM builds ORDER BY built_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query builds: %w", err)
	}
	defer rows.Close()

	var out []BuildSummary
	for rows.Next() {
		var b BuildSummary
		if err := rows.Scan(&b.ID, &b.TroopID, &b.BuiltAt, &b.ScoutCount, &b.OrderCount,
			&b.WarningCount, &b.PackagesCredited, &b.ProceedsRate, &b.ProceedsAmount); err != nil {
			return nil, fmt.Errorf("scan build: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Count returns the number of persisted builds.
func (r *BuildRepo) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM builds`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count builds: %w", err)
	}
	return n, nil
}
