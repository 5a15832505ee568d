// Package store holds the season accumulator: a single mutable
// container the importers write into, frozen into an immutable
// Snapshot before the unification engine reads it.
package store

import (
	"time"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

// DataStore accumulates normalized-but-unreconciled season records.
// It is single-writer and sequential: importers append, nothing reads
// until Freeze.
type DataStore struct {
	troopID            string
	scoutCountOverride int
	orders             []domain.Order
	transfers          []domain.Transfer
	allocations        []domain.Allocation
	scoutRows          []domain.ScoutRef
	virtualShare       map[string]int
	boothReservations  []domain.BoothReservation
	boothLocations     []domain.BoothLocation
	cookieIDs          map[string]string
	imports            map[domain.Source]domain.ImportInfo
	warnings           []domain.Warning
}

// New creates an empty season accumulator.
func New() *DataStore {
	return &DataStore{
		virtualShare: make(map[string]int),
		cookieIDs:    make(map[string]string),
		imports:      make(map[domain.Source]domain.ImportInfo),
	}
}

func (d *DataStore) SetTroopID(id string) { d.troopID = id }

// SetScoutCountOverride pins the active-scout count used for the PGA
// calculation, for troops whose roster exceeds the scouts visible in
// the data.
func (d *DataStore) SetScoutCountOverride(n int) { d.scoutCountOverride = n }

func (d *DataStore) AddOrder(o domain.Order)                  { d.orders = append(d.orders, o) }
func (d *DataStore) AddTransfer(t domain.Transfer)            { d.transfers = append(d.transfers, t) }
func (d *DataStore) AddAllocation(a domain.Allocation)        { d.allocations = append(d.allocations, a) }
func (d *DataStore) AddScoutRow(r domain.ScoutRef)            { d.scoutRows = append(d.scoutRows, r) }
func (d *DataStore) AddBoothReservation(b domain.BoothReservation) {
	d.boothReservations = append(d.boothReservations, b)
}
func (d *DataStore) AddBoothLocation(b domain.BoothLocation) {
	d.boothLocations = append(d.boothLocations, b)
}

// SetVirtualShare records a scout's virtual cookie-share count keyed
// by vendor scout id.
func (d *DataStore) SetVirtualShare(scoutID string, count int) {
	d.virtualShare[scoutID] = count
}

// SetCookieID records a vendor cookie-id to variety-name mapping.
func (d *DataStore) SetCookieID(id, name string) { d.cookieIDs[id] = name }

// MarkImported records that a source finished importing n records.
func (d *DataStore) MarkImported(src domain.Source, n int, at time.Time) {
	d.imports[src] = domain.ImportInfo{At: at, Records: n}
}

// Warn appends an import-stage warning.
func (d *DataStore) Warn(w domain.Warning) { d.warnings = append(d.warnings, w) }

// Freeze copies the accumulated state into an immutable Snapshot.
// The store remains usable afterward; the snapshot does not observe
// later appends.
func (d *DataStore) Freeze() *Snapshot {
	s := &Snapshot{
		troopID:            d.troopID,
		scoutCountOverride: d.scoutCountOverride,
		orders:             append([]domain.Order(nil), d.orders...),
		transfers:          append([]domain.Transfer(nil), d.transfers...),
		allocations:        append([]domain.Allocation(nil), d.allocations...),
		scoutRows:          append([]domain.ScoutRef(nil), d.scoutRows...),
		boothReservations:  append([]domain.BoothReservation(nil), d.boothReservations...),
		boothLocations:     append([]domain.BoothLocation(nil), d.boothLocations...),
		virtualShare:       make(map[string]int, len(d.virtualShare)),
		cookieIDs:          make(map[string]string, len(d.cookieIDs)),
		imports:            make(map[domain.Source]domain.ImportInfo, len(d.imports)),
		warnings:           append([]domain.Warning(nil), d.warnings...),
	}
	for k, v := range d.virtualShare {
		s.virtualShare[k] = v
	}
	for k, v := range d.cookieIDs {
		s.cookieIDs[k] = v
	}
	for k, v := range d.imports {
		s.imports[k] = v
	}
	return s
}

// Snapshot is the frozen, read-only view of a season accumulation.
// Accessors return internal state; callers must not mutate it.
type Snapshot struct {
	troopID            string
	scoutCountOverride int
	orders             []domain.Order
	transfers          []domain.Transfer
	allocations        []domain.Allocation
	scoutRows          []domain.ScoutRef
	virtualShare       map[string]int
	boothReservations  []domain.BoothReservation
	boothLocations     []domain.BoothLocation
	cookieIDs          map[string]string
	imports            map[domain.Source]domain.ImportInfo
	warnings           []domain.Warning
}

func (s *Snapshot) TroopID() string                              { return s.troopID }
func (s *Snapshot) ScoutCountOverride() int                      { return s.scoutCountOverride }
func (s *Snapshot) Orders() []domain.Order                       { return s.orders }
func (s *Snapshot) Transfers() []domain.Transfer                 { return s.transfers }
func (s *Snapshot) Allocations() []domain.Allocation             { return s.allocations }
func (s *Snapshot) ScoutRows() []domain.ScoutRef                 { return s.scoutRows }
func (s *Snapshot) VirtualShare() map[string]int                 { return s.virtualShare }
func (s *Snapshot) BoothReservations() []domain.BoothReservation { return s.boothReservations }
func (s *Snapshot) BoothLocations() []domain.BoothLocation       { return s.boothLocations }
func (s *Snapshot) CookieIDs() map[string]string                 { return s.cookieIDs }
func (s *Snapshot) Imports() map[domain.Source]domain.ImportInfo { return s.imports }
func (s *Snapshot) Warnings() []domain.Warning                   { return s.warnings }
