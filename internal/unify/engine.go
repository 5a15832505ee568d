// Package unify implements the reconciliation engine: a single
// deterministic, side-effect-free pass over a frozen season snapshot
// that produces one consistent UnifiedDataset. Data problems become
// warnings; the build never aborts on record content.
package unify

import (
	"errors"
	"fmt"
	"time"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
	"github.com/tyleryates/cookie-tracker-sub004/internal/store"
)

// Build runs the full unification pass over a frozen snapshot.
// A nil snapshot is the one contract violation that returns an error;
// everything else is surfaced through the dataset's warnings.
func Build(snap *store.Snapshot) (*domain.UnifiedDataset, error) {
	return buildAt(snap, time.Now().UTC())
}

// buildAt is Build with an injected clock. Two calls with the same
// snapshot and instant produce identical output.
func buildAt(snap *store.Snapshot, now time.Time) (*domain.UnifiedDataset, error) {
	if snap == nil {
		return nil, errors.New("unify: nil snapshot")
	}

	b := newBuilder(snap, now)

	b.resolveScouts()
	orders := b.mergeOrders()
	b.aggregateOrders(orders)
	breakdowns, varieties := b.buildTransferBreakdowns()
	b.creditAllocations()
	b.computeInventories()

	totals := b.computeTroopTotals(orders, breakdowns, &varieties)
	site := b.categorizeSiteOrders(orders, totals)
	cookieShare := b.trackCookieShare(orders)

	warnings := append(append([]domain.Warning(nil), snap.Warnings()...), b.warnings...)
	health := countHealthChecks(warnings)

	ds := &domain.UnifiedDataset{
		TroopID:            snap.TroopID(),
		Scouts:             b.scouts,
		SiteOrders:         site,
		TroopTotals:        totals,
		TransferBreakdowns: breakdowns,
		Varieties:          varieties,
		CookieShare:        cookieShare,
		BoothReservations:  snap.BoothReservations(),
		BoothLocations:     snap.BoothLocations(),
		Warnings:           warnings,
		Metadata: domain.Metadata{
			BuiltAt:      now,
			TroopID:      snap.TroopID(),
			Imports:      snap.Imports(),
			CookieIDMap:  snap.CookieIDs(),
			ScoutCount:   len(b.scouts),
			OrderCount:   len(orders),
			HealthChecks: health,
		},
	}
	return ds, nil
}

// builder carries the working state of one unification pass.
type builder struct {
	snap *store.Snapshot
	now  time.Time

	scouts  map[string]*domain.Scout
	aliases map[string]string // any resolution key -> canonical scout id

	credited map[string]domain.VarietyCounts // per-scout physical packages credited
	sold     map[string]domain.VarietyCounts // per-scout physical packages sold

	channelTotals map[domain.Channel]int

	warnings []domain.Warning
	warnSeq  int
}

func newBuilder(snap *store.Snapshot, now time.Time) *builder {
	return &builder{
		snap:          snap,
		now:           now,
		scouts:        make(map[string]*domain.Scout),
		aliases:       make(map[string]string),
		credited:      make(map[string]domain.VarietyCounts),
		sold:          make(map[string]domain.VarietyCounts),
		channelTotals: make(map[domain.Channel]int),
	}
}

// warn appends an engine warning. IDs are sequential so that identical
// snapshots produce identical warning records.
func (b *builder) warn(wt domain.WarningType, src domain.Source, recordID, raw, msg string) {
	b.warnSeq++
	b.warnings = append(b.warnings, domain.Warning{
		ID:         fmt.Sprintf("W-%04d", b.warnSeq),
		Type:       wt,
		Source:     src,
		RecordID:   recordID,
		RawValue:   raw,
		Message:    msg,
		DetectedAt: b.now,
	})
}

func countHealthChecks(warnings []domain.Warning) domain.HealthChecks {
	h := domain.HealthChecks{TotalWarnings: len(warnings)}
	for _, w := range warnings {
		switch w.Type {
		case domain.WarnUnknownOrderType:
			h.UnknownOrderTypes++
		case domain.WarnUnknownPayment:
			h.UnknownPaymentMethods++
		case domain.WarnUnknownTransfer:
			h.UnknownTransferTypes++
		}
	}
	return h
}
