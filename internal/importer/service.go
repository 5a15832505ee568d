package importer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
	"github.com/tyleryates/cookie-tracker-sub004/internal/store"
	"github.com/tyleryates/cookie-tracker-sub004/internal/validate"
)

// Season file names inside a data directory.
const (
	FileDigitalCookie = "digital_cookie.csv"
	FileSCOrders      = "sc_orders.json"
	FileSCTransfers   = "sc_transfers.json"
	FileSCBooths      = "sc_booths.json"
	FileSCShare       = "sc_cookieshare.json"
	FileManual        = "manual.csv"
)

// Service loads a season directory into a fresh accumulator. Loading
// is single-writer and sequential: the returned store is complete when
// LoadSeason returns.
type Service struct {
	troopID    string
	scoutCount int
}

// NewService creates an importer service. troopID overrides the troop
// id reported by SC when non-empty; scoutCount, when positive, pins
// the active-scout count used for the PGA calculation.
func NewService(troopID string, scoutCount int) *Service {
	return &Service{troopID: troopID, scoutCount: scoutCount}
}

// LoadSeason reads every known source file under dir into a new
// DataStore. A missing or unparseable source becomes a SOURCE_SKIPPED
// warning; the season build proceeds with whatever loaded.
func (s *Service) LoadSeason(dir string) (*store.DataStore, error) {
	ds := store.New()
	if s.troopID != "" {
		ds.SetTroopID(s.troopID)
	}
	if s.scoutCount > 0 {
		ds.SetScoutCountOverride(s.scoutCount)
	}

	s.loadDigitalCookie(ds, filepath.Join(dir, FileDigitalCookie))
	s.loadSCOrders(ds, filepath.Join(dir, FileSCOrders))
	s.loadSCTransfers(ds, filepath.Join(dir, FileSCTransfers))
	s.loadSCBooths(ds, filepath.Join(dir, FileSCBooths))
	s.loadSCShare(ds, filepath.Join(dir, FileSCShare))
	s.loadManual(ds, filepath.Join(dir, FileManual))

	return ds, nil
}

// skip records a skipped source and logs it.
func skip(ds *store.DataStore, src domain.Source, path string, err error) {
	log.Printf("[importer] WARNING: skipping %s source %s: %v", src, path, err)
	ds.Warn(rowWarning(domain.WarnSourceSkipped, src, filepath.Base(path), "",
		fmt.Sprintf("source %s skipped: %v", filepath.Base(path), err)))
}

func (s *Service) loadDigitalCookie(ds *store.DataStore, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		skip(ds, domain.SourceDigitalCookie, path, err)
		return
	}
	orders, warnings, err := ParseDigitalCookieCSV(data)
	if err != nil {
		skip(ds, domain.SourceDigitalCookie, path, err)
		return
	}
	for _, w := range warnings {
		ds.Warn(w)
	}
	for _, o := range orders {
		for _, w := range validate.Order(o, domain.SourceDigitalCookie) {
			ds.Warn(w)
		}
		ds.AddOrder(o)
		ds.AddScoutRow(o.Scout)
	}
	ds.MarkImported(domain.SourceDigitalCookie, len(orders), time.Now().UTC())
	log.Printf("[importer] DC: %d orders (%d warnings)", len(orders), len(warnings))
}

func (s *Service) loadSCOrders(ds *store.DataStore, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		skip(ds, domain.SourceSmartCookie, path, err)
		return
	}
	cookieIDs := make(map[string]string)
	troopID, orders, warnings, err := ParseSmartCookieOrders(data, cookieIDs)
	if err != nil {
		skip(ds, domain.SourceSmartCookie, path, err)
		return
	}
	if s.troopID == "" && troopID != "" {
		ds.SetTroopID(troopID)
	}
	for id, name := range cookieIDs {
		ds.SetCookieID(id, name)
	}
	for _, w := range warnings {
		ds.Warn(w)
	}
	for _, o := range orders {
		for _, w := range validate.Order(o, domain.SourceSmartCookie) {
			ds.Warn(w)
		}
		ds.AddOrder(o)
		ds.AddScoutRow(o.Scout)
	}
	ds.MarkImported(domain.SourceSmartCookie, len(orders), time.Now().UTC())
	log.Printf("[importer] SC orders: %d (%d warnings)", len(orders), len(warnings))
}

func (s *Service) loadSCTransfers(ds *store.DataStore, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		skip(ds, domain.SourceSmartCookie, path, err)
		return
	}
	cookieIDs := make(map[string]string)
	transfers, warnings, err := ParseSmartCookieTransfers(data, cookieIDs)
	if err != nil {
		skip(ds, domain.SourceSmartCookie, path, err)
		return
	}
	for id, name := range cookieIDs {
		ds.SetCookieID(id, name)
	}
	for _, w := range warnings {
		ds.Warn(w)
	}
	for _, t := range transfers {
		for _, w := range validate.Transfer(t, domain.SourceSmartCookie) {
			ds.Warn(w)
		}
		ds.AddTransfer(t)
	}
	log.Printf("[importer] SC transfers: %d (%d warnings)", len(transfers), len(warnings))
}

func (s *Service) loadSCBooths(ds *store.DataStore, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		skip(ds, domain.SourceSmartCookie, path, err)
		return
	}
	cookieIDs := make(map[string]string)
	reservations, locations, allocations, warnings, err := ParseSmartCookieBooths(data, cookieIDs)
	if err != nil {
		skip(ds, domain.SourceSmartCookie, path, err)
		return
	}
	for id, name := range cookieIDs {
		ds.SetCookieID(id, name)
	}
	for _, w := range warnings {
		ds.Warn(w)
	}
	for _, r := range reservations {
		ds.AddBoothReservation(r)
	}
	for _, l := range locations {
		ds.AddBoothLocation(l)
	}
	for _, a := range allocations {
		for _, w := range validate.Allocation(a, domain.SourceSmartCookie) {
			ds.Warn(w)
		}
		ds.AddAllocation(a)
	}
	log.Printf("[importer] SC booths: %d reservations, %d allocations (%d warnings)",
		len(reservations), len(allocations), len(warnings))
}

func (s *Service) loadSCShare(ds *store.DataStore, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		skip(ds, domain.SourceSmartCookie, path, err)
		return
	}
	transfers, virtual, err := ParseSmartCookieShare(data)
	if err != nil {
		skip(ds, domain.SourceSmartCookie, path, err)
		return
	}
	for _, t := range transfers {
		ds.AddTransfer(t)
	}
	for scoutID, n := range virtual {
		ds.SetVirtualShare(scoutID, n)
	}
	log.Printf("[importer] SC cookie share: %d records, %d virtual scouts", len(transfers), len(virtual))
}

func (s *Service) loadManual(ds *store.DataStore, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// The manual sheet is optional.
			return
		}
		skip(ds, domain.SourceManual, path, err)
		return
	}
	orders, warnings, err := ParseManualCSV(data)
	if err != nil {
		skip(ds, domain.SourceManual, path, err)
		return
	}
	for _, w := range warnings {
		ds.Warn(w)
	}
	for _, o := range orders {
		ds.AddOrder(o)
		ds.AddScoutRow(o.Scout)
	}
	ds.MarkImported(domain.SourceManual, len(orders), time.Now().UTC())
	log.Printf("[importer] manual: %d rows (%d warnings)", len(orders), len(warnings))
}
