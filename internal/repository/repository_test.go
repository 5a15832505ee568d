package repository

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleDataset(builtAt time.Time) *domain.UnifiedDataset {
	return &domain.UnifiedDataset{
		TroopID: "40125",
		Scouts: map[string]*domain.Scout{
			"id:5001": {
				ID:          "id:5001",
				ScoutID:     "5001",
				FirstName:   "Amy",
				LastName:    "Pond",
				DisplayName: "Amy Pond",
				Totals:      domain.ScoutTotals{Orders: 2, Packages: 10, Credited: 50},
				Inventory: domain.Inventory{
					Total:     40,
					Varieties: domain.VarietyCounts{domain.VarietyThinMints: 40},
				},
			},
		},
		TroopTotals: domain.TroopTotals{
			PackagesCredited: 50,
			ProceedsRate:     0.85,
			ProceedsAmount:   42.50,
			ActiveScouts:     1,
			Inventory:        60,
		},
		TransferBreakdowns: domain.TransferBreakdowns{
			C2T: []domain.Transfer{{
				ID: "TR-1", Category: domain.TransferC2T, Date: builtAt.AddDate(0, 0, -7),
				Packages: 100, Source: domain.SourceSmartCookie,
			}},
			Totals: domain.TransferTotals{C2T: 100, T2GPhysical: 40, NetToScouts: 40},
		},
		Warnings: []domain.Warning{{
			ID: "W-0001", Type: domain.WarnUnknownTransfer,
			Source: domain.SourceSmartCookie, RecordID: "TR-9999",
			RawValue: "Inventory Adjustment", Message: "unrecognized type",
			DetectedAt: builtAt,
		}},
		Metadata: domain.Metadata{
			BuiltAt:     builtAt,
			TroopID:     "40125",
			Imports:     map[domain.Source]domain.ImportInfo{domain.SourceSmartCookie: {At: builtAt, Records: 3}},
			CookieIDMap: map[string]string{"107": "Thin Mints"},
			ScoutCount:  1,
			OrderCount:  2,
			HealthChecks: domain.HealthChecks{
				UnknownTransferTypes: 1,
				TotalWarnings:        1,
			},
		},
	}
}

func TestBuildRepoSaveLoad(t *testing.T) {
	db := testDB(t)
	repo := NewBuildRepo(db)

	builtAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	ds := sampleDataset(builtAt)

	id, err := repo.Save(ds)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loaded, err := repo.Load(id)
	require.NoError(t, err)

	// Compare through JSON so map ordering does not matter.
	want, err := json.Marshal(ds)
	require.NoError(t, err)
	got, err := json.Marshal(loaded)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func TestBuildRepoLatest(t *testing.T) {
	db := testDB(t)
	repo := NewBuildRepo(db)

	latest, err := repo.Latest()
	require.NoError(t, err)
	assert.Nil(t, latest)

	older := sampleDataset(time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC))
	newer := sampleDataset(time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC))
	newer.TroopTotals.PackagesCredited = 75

	_, err = repo.Save(older)
	require.NoError(t, err)
	_, err = repo.Save(newer)
	require.NoError(t, err)

	latest, err = repo.Latest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 75, latest.TroopTotals.PackagesCredited)
}

func TestBuildRepoList(t *testing.T) {
	db := testDB(t)
	repo := NewBuildRepo(db)

	for i := 0; i < 3; i++ {
		ds := sampleDataset(time.Date(2026, 1, 10+i, 8, 0, 0, 0, time.UTC))
		_, err := repo.Save(ds)
		require.NoError(t, err)
	}

	builds, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, builds, 2)
	assert.True(t, builds[0].BuiltAt.After(builds[1].BuiltAt))
	assert.Equal(t, "40125", builds[0].TroopID)
	assert.Equal(t, 1, builds[0].WarningCount)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestWarningRepo(t *testing.T) {
	db := testDB(t)
	buildRepo := NewBuildRepo(db)
	warnRepo := NewWarningRepo(db)

	builtAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	buildID, err := buildRepo.Save(sampleDataset(builtAt))
	require.NoError(t, err)

	warnings := []domain.Warning{
		{ID: "W-0001", Type: domain.WarnUnknownTransfer, Source: domain.SourceSmartCookie,
			RecordID: "TR-9999", Message: "unrecognized type", DetectedAt: builtAt},
		{ID: "W-0002", Type: domain.WarnUnknownOrderType, Source: domain.SourceDigitalCookie,
			RecordID: "DC-1", Message: "unrecognized order type", DetectedAt: builtAt},
		{ID: "W-0003", Type: domain.WarnUnknownTransfer, Source: domain.SourceSmartCookie,
			RecordID: "TR-9998", Message: "unrecognized type", DetectedAt: builtAt},
	}

	n, err := warnRepo.BulkInsert(buildID, warnings)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := warnRepo.ListByBuild(buildID, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "W-0001", all[0].ID)

	transfers, err := warnRepo.ListByBuild(buildID, domain.WarnUnknownTransfer)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	for _, w := range transfers {
		assert.Equal(t, domain.WarnUnknownTransfer, w.Type)
	}

	counts, err := warnRepo.CountsByType(buildID)
	require.NoError(t, err)
	assert.Equal(t, map[domain.WarningType]int{
		domain.WarnUnknownTransfer:  2,
		domain.WarnUnknownOrderType: 1,
	}, counts)
}

func TestWarningRepoEmptyInsert(t *testing.T) {
	warnRepo := NewWarningRepo(testDB(t))
	n, err := warnRepo.BulkInsert("missing-build", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
