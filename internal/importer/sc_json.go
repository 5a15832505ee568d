package importer

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tyleryates/cookie-tracker-sub004/internal/classify"
	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

// The SC API is transfer- and allocation-centric; its payloads arrive
// as JSON documents per endpoint.

type scCookie struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type scOrder struct {
	OrderNumber   string     `json:"order_number"`
	GirlID        string     `json:"girl_id"`
	GirlFirstName string     `json:"girl_first_name"`
	GirlLastName  string     `json:"girl_last_name"`
	GSUSAID       string     `json:"gsusa_id"`
	Date          string     `json:"date"`
	Type          string     `json:"type"`
	Packages      int        `json:"packages"`
	Donations     int        `json:"donations"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	PaymentMethod string     `json:"payment_method"`
	Cookies       []scCookie `json:"cookies"`
}

type scOrdersFile struct {
	TroopID string    `json:"troop_id"`
	Orders  []scOrder `json:"orders"`
}

type scTransfer struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Date          string     `json:"date"`
	From          string     `json:"from"`
	To            string     `json:"to"`
	GirlID        string     `json:"girl_id"`
	GirlFirstName string     `json:"girl_first_name"`
	GirlLastName  string     `json:"girl_last_name"`
	OrderNumber   string     `json:"order_number"`
	Packages      int        `json:"packages"`
	Donations     int        `json:"donations"`
	Pending       bool       `json:"pending"`
	Cookies       []scCookie `json:"cookies"`
}

type scTransfersFile struct {
	Transfers []scTransfer `json:"transfers"`
}

type scReservation struct {
	ID        string `json:"id"`
	Store     string `json:"store"`
	Address   string `json:"address"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type scLocation struct {
	ID      string `json:"id"`
	Store   string `json:"store"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

type scAllocation struct {
	ID            string     `json:"id"`
	Channel       string     `json:"channel"`
	GirlID        string     `json:"girl_id"`
	GirlFirstName string     `json:"girl_first_name"`
	GirlLastName  string     `json:"girl_last_name"`
	Packages      int        `json:"packages"`
	Donations     int        `json:"donations"`
	ReservationID string     `json:"reservation_id"`
	OrderNumber   string     `json:"order_number"`
	Store         string     `json:"store"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	Cookies       []scCookie `json:"cookies"`
}

type scBoothsFile struct {
	Reservations []scReservation `json:"reservations"`
	Locations    []scLocation    `json:"locations"`
	Allocations  []scAllocation  `json:"allocations"`
}

type scShareRecord struct {
	GirlID        string `json:"girl_id"`
	GirlFirstName string `json:"girl_first_name"`
	GirlLastName  string `json:"girl_last_name"`
	Count         int    `json:"count"`
	Virtual       bool   `json:"virtual"`
}

type scCookieShareFile struct {
	Records []scShareRecord `json:"records"`
}

// cookieCounts normalizes an SC cookie list into variety counts,
// surfacing unknown names as warnings and recording the vendor
// cookie-id map entries.
func cookieCounts(cookies []scCookie, recordID string, ids map[string]string) (domain.VarietyCounts, []domain.Warning) {
	counts := domain.VarietyCounts{}
	var warnings []domain.Warning
	for _, c := range cookies {
		if c.ID != "" && c.Name != "" && ids != nil {
			ids[c.ID] = c.Name
		}
		v, ok := classify.Variety(c.Name)
		if !ok {
			warnings = append(warnings, rowWarning(domain.WarnUnknownVariety, domain.SourceSmartCookie,
				recordID, c.Name, fmt.Sprintf("record %s: unrecognized cookie variety %q", recordID, c.Name)))
			continue
		}
		counts.Add(v, c.Quantity)
	}
	return counts, warnings
}

func (o scOrder) scoutRef() domain.ScoutRef {
	return domain.ScoutRef{
		ID:      o.GirlID,
		GSUSAID: o.GSUSAID,
		First:   o.GirlFirstName,
		Last:    o.GirlLastName,
		Source:  domain.SourceSmartCookie,
	}
}

// ParseSmartCookieOrders parses the SC order endpoint payload.
func ParseSmartCookieOrders(data []byte, cookieIDs map[string]string) (string, []domain.Order, []domain.Warning, error) {
	var file scOrdersFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", nil, nil, fmt.Errorf("unmarshal orders: %w", err)
	}

	var orders []domain.Order
	var warnings []domain.Warning

	for i, entry := range file.Orders {
		recordID := entry.OrderNumber
		if recordID == "" {
			recordID = fmt.Sprintf("order %d", i)
		}
		date, err := parseDate(entry.Date)
		if err != nil {
			warnings = append(warnings, rowWarning(domain.WarnUnparseableRow, domain.SourceSmartCookie,
				recordID, entry.Date, fmt.Sprintf("order %s: bad date: %v", recordID, err)))
			continue
		}

		varieties, ws := cookieCounts(entry.Cookies, recordID, cookieIDs)
		warnings = append(warnings, ws...)
		if entry.Donations > 0 {
			varieties.Add(domain.VarietyCookieShare, entry.Donations)
		}

		orders = append(orders, domain.Order{
			Number:           entry.OrderNumber,
			Scout:            entry.scoutRef(),
			Date:             date,
			Type:             entry.Type,
			Packages:         entry.Packages,
			PhysicalPackages: varieties.PhysicalTotal(),
			Donations:        entry.Donations,
			Amount:           entry.Amount,
			Status:           entry.Status,
			PaymentStatus:    entry.PaymentStatus,
			PaymentMethod:    entry.PaymentMethod,
			Varieties:        varieties,
			Sources:          []domain.Source{domain.SourceSmartCookie},
			Raw: map[domain.Source]map[string]string{
				domain.SourceSmartCookie: {
					"status": entry.Status,
					"type":   entry.Type,
					"index":  strconv.Itoa(i),
				},
			},
		})
	}

	return file.TroopID, orders, warnings, nil
}

// ParseSmartCookieTransfers parses the SC transfer endpoint payload.
// Transfer types are classified here so the accumulator carries both
// the raw string and the closed category.
func ParseSmartCookieTransfers(data []byte, cookieIDs map[string]string) ([]domain.Transfer, []domain.Warning, error) {
	var file scTransfersFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("unmarshal transfers: %w", err)
	}

	var transfers []domain.Transfer
	var warnings []domain.Warning

	for i, entry := range file.Transfers {
		recordID := entry.ID
		if recordID == "" {
			recordID = fmt.Sprintf("transfer %d", i)
		}
		date, err := parseDate(entry.Date)
		if err != nil {
			warnings = append(warnings, rowWarning(domain.WarnUnparseableRow, domain.SourceSmartCookie,
				recordID, entry.Date, fmt.Sprintf("transfer %s: bad date: %v", recordID, err)))
			continue
		}

		varieties, ws := cookieCounts(entry.Cookies, recordID, cookieIDs)
		warnings = append(warnings, ws...)

		transfers = append(transfers, domain.Transfer{
			ID:               entry.ID,
			Category:         classify.TransferCategory(entry.Type),
			RawType:          entry.Type,
			Date:             date,
			From:             entry.From,
			To:               entry.To,
			Scout: domain.ScoutRef{
				ID:     entry.GirlID,
				First:  entry.GirlFirstName,
				Last:   entry.GirlLastName,
				Source: domain.SourceSmartCookie,
			},
			Packages:         entry.Packages,
			PhysicalPackages: varieties.PhysicalTotal(),
			Donations:        entry.Donations,
			Varieties:        varieties,
			OrderNumber:      entry.OrderNumber,
			Pending:          entry.Pending,
			Source:           domain.SourceSmartCookie,
		})
	}

	return transfers, warnings, nil
}

// ParseSmartCookieBooths parses the SC booth endpoint payload:
// reservations, locations and channel allocations.
func ParseSmartCookieBooths(data []byte, cookieIDs map[string]string) ([]domain.BoothReservation, []domain.BoothLocation, []domain.Allocation, []domain.Warning, error) {
	var file scBoothsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("unmarshal booths: %w", err)
	}

	var warnings []domain.Warning
	var reservations []domain.BoothReservation
	for _, r := range file.Reservations {
		date, err := parseDate(r.Date)
		if err != nil {
			warnings = append(warnings, rowWarning(domain.WarnUnparseableRow, domain.SourceSmartCookie,
				r.ID, r.Date, fmt.Sprintf("reservation %s: bad date: %v", r.ID, err)))
			continue
		}
		reservations = append(reservations, domain.BoothReservation{
			ID:        r.ID,
			Store:     r.Store,
			Address:   r.Address,
			Date:      date,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}

	locations := make([]domain.BoothLocation, 0, len(file.Locations))
	for _, l := range file.Locations {
		locations = append(locations, domain.BoothLocation{
			ID:      l.ID,
			Store:   l.Store,
			Address: l.Address,
			City:    l.City,
			Zip:     l.Zip,
		})
	}

	var allocations []domain.Allocation
	for i, a := range file.Allocations {
		recordID := a.ID
		if recordID == "" {
			recordID = fmt.Sprintf("allocation %d", i)
		}
		varieties, ws := cookieCounts(a.Cookies, recordID, cookieIDs)
		warnings = append(warnings, ws...)

		allocations = append(allocations, domain.Allocation{
			ID:      a.ID,
			Channel: classify.Channel(a.Channel),
			Scout: domain.ScoutRef{
				ID:     a.GirlID,
				First:  a.GirlFirstName,
				Last:   a.GirlLastName,
				Source: domain.SourceSmartCookie,
			},
			Packages:      a.Packages,
			Donations:     a.Donations,
			Varieties:     varieties,
			ReservationID: a.ReservationID,
			OrderNumber:   a.OrderNumber,
			Store:         a.Store,
			StartTime:     a.StartTime,
			EndTime:       a.EndTime,
			Source:        domain.SourceSmartCookie,
		})
	}

	return reservations, locations, allocations, warnings, nil
}

// ParseSmartCookieShare parses the SC cookie-share endpoint payload.
// Non-virtual records become cookie-share transfer entries; virtual
// records become per-scout virtual counts.
func ParseSmartCookieShare(data []byte) ([]domain.Transfer, map[string]int, error) {
	var file scCookieShareFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("unmarshal cookie share: %w", err)
	}

	var transfers []domain.Transfer
	virtual := make(map[string]int)

	for i, rec := range file.Records {
		if rec.Virtual {
			virtual[rec.GirlID] += rec.Count
			continue
		}
		transfers = append(transfers, domain.Transfer{
			ID:       fmt.Sprintf("CS-%s-%d", rec.GirlID, i),
			Category: domain.TransferCookieShare,
			RawType:  "Cookie Share",
			Scout: domain.ScoutRef{
				ID:     rec.GirlID,
				First:  rec.GirlFirstName,
				Last:   rec.GirlLastName,
				Source: domain.SourceSmartCookie,
			},
			Packages:  rec.Count,
			Donations: rec.Count,
			Varieties: domain.VarietyCounts{domain.VarietyCookieShare: rec.Count},
			Source:    domain.SourceSmartCookie,
		})
	}

	return transfers, virtual, nil
}
