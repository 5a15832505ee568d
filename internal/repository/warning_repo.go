package repository

import (
	"database/sql"
	"fmt"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

// WarningRepo persists the per-build warning list so anomalies stay
// queryable after the dataset blob itself is archived.
type WarningRepo struct {
	db *sql.DB
}

// NewWarningRepo creates a new warning repository.
func NewWarningRepo(db *sql.DB) *WarningRepo {
	return &WarningRepo{db: db}
}

// BulkInsert stores a build's warnings. Returns the number inserted.
func (r *WarningRepo) BulkInsert(buildID string, warnings []domain.Warning) (int, error) {
	if len(warnings) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO warnings
		(id, build_id, type, source, record_id, raw_value, message, detected_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, w := range warnings {
		if _, err := stmt.Exec(w.ID, buildID, string(w.Type), string(w.Source),
			w.RecordID, w.RawValue, w.Message, w.DetectedAt); err != nil {
			return inserted, fmt.Errorf("insert warning %s: %w", w.ID, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

// ListByBuild returns a build's warnings, optionally filtered by type.
func (r *WarningRepo) ListByBuild(buildID string, wt domain.WarningType) ([]domain.Warning, error) {
	query := `SELECT id, type, source, record_id, raw_value, message, detected_at
		FROM warnings WHERE build_id = ?`
	args := []any{buildID}
	if wt != "" {
		query += ` AND type = ?`
		args = append(args, string(wt))
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query warnings: %w", err)
	}
	defer rows.Close()

	var out []domain.Warning
	for rows.Next() {
		var w domain.Warning
		var typ, src string
		if err := rows.Scan(&w.ID, &typ, &src, &w.RecordID, &w.RawValue, &w.Message, &w.DetectedAt); err != nil {
			return nil, fmt.Errorf("scan warning: %w", err)
		}
		w.Type = domain.WarningType(typ)
		w.Source = domain.Source(src)
		out = append(out, w)
	}
	return out, rows.Err()
}

// CountsByType returns a build's warning counts grouped by type.
func (r *WarningRepo) CountsByType(buildID string) (map[domain.WarningType]int, error) {
	rows, err := r.db.Query(`SELECT type, COUNT(*) FROM warnings
		WHERE build_id = ? GROUP BY type`, buildID)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.WarningType]int)
	for rows.Next() {
		var typ string
		var n int
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out[domain.WarningType(typ)] = n
	}
	return out, rows.Err()
}
