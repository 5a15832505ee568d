package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tyleryates/cookie-tracker-sub004/internal/classify"
	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

// ParseDigitalCookieCSV parses the DC per-scout storefront export.
//
// Expected header:
//
//	order_number,scout_id,scout_first,scout_last,order_date,order_type,
//	packages,donations,amount,status,payment_status,payment_method,
//	<one column per variety>
//
// A malformed row becomes a warning and is skipped; only an unreadable
// header fails the whole file.
func ParseDigitalCookieCSV(data []byte) ([]domain.Order, []domain.Warning, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 12 {
		return nil, nil, fmt.Errorf("expected at least 12 columns, got %d", len(header))
	}

	// Columns past the fixed block are per-variety counts keyed by the
	// header name.
	varietyCols := make(map[int]domain.Variety)
	var warnings []domain.Warning
	for i := 12; i < len(header); i++ {
		name := strings.ReplaceAll(strings.TrimSpace(header[i]), "_", " ")
		v, ok := classify.Variety(name)
		if !ok {
			warnings = append(warnings, rowWarning(domain.WarnUnknownVariety, domain.SourceDigitalCookie,
				"header", header[i], fmt.Sprintf("unrecognized variety column %q; counts in it will be ignored", header[i])))
			continue
		}
		varietyCols[i] = v
	}

	var orders []domain.Order
	lineNum := 1

	for {
		lineNum++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			warnings = append(warnings, rowWarning(domain.WarnUnparseableRow, domain.SourceDigitalCookie,
				fmt.Sprintf("line %d", lineNum), "", fmt.Sprintf("line %d: %v", lineNum, err)))
			continue
		}
		if len(row) < 12 {
			warnings = append(warnings, rowWarning(domain.WarnUnparseableRow, domain.SourceDigitalCookie,
				fmt.Sprintf("line %d", lineNum), strings.Join(row, ","),
				fmt.Sprintf("line %d: expected at least 12 columns, got %d", lineNum, len(row))))
			continue
		}

		number := strings.TrimSpace(row[0])
		packages, err := strconv.Atoi(strings.TrimSpace(row[6]))
		if err != nil {
			warnings = append(warnings, rowWarning(domain.WarnUnparseableRow, domain.SourceDigitalCookie,
				number, row[6], fmt.Sprintf("line %d: bad package count: %v", lineNum, err)))
			continue
		}
		donations, err := strconv.Atoi(strings.TrimSpace(row[7]))
		if err != nil {
			warnings = append(warnings, rowWarning(domain.WarnUnparseableRow, domain.SourceDigitalCookie,
				number, row[7], fmt.Sprintf("line %d: bad donation count: %v", lineNum, err)))
			continue
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(row[8]), 64)
		if err != nil {
			warnings = append(warnings, rowWarning(domain.WarnUnparseableRow, domain.SourceDigitalCookie,
				number, row[8], fmt.Sprintf("line %d: bad amount: %v", lineNum, err)))
			continue
		}

		date, err := parseDate(strings.TrimSpace(row[4]))
		if err != nil {
			warnings = append(warnings, rowWarning(domain.WarnUnparseableRow, domain.SourceDigitalCookie,
				number, row[4], fmt.Sprintf("line %d: bad date: %v", lineNum, err)))
			continue
		}

		varieties := domain.VarietyCounts{}
		for col, v := range varietyCols {
			if col >= len(row) {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSpace(row[col]))
			if err != nil || n == 0 {
				continue
			}
			varieties.Add(v, n)
		}
		if donations > 0 {
			varieties.Add(domain.VarietyCookieShare, donations)
		}

		o := domain.Order{
			Number: number,
			Scout: domain.ScoutRef{
				ID:     strings.TrimSpace(row[1]),
				First:  strings.TrimSpace(row[2]),
				Last:   strings.TrimSpace(row[3]),
				Source: domain.SourceDigitalCookie,
			},
			Date:             date,
			Type:             strings.TrimSpace(row[5]),
			Packages:         packages,
			PhysicalPackages: varieties.PhysicalTotal(),
			Donations:        donations,
			Amount:           amount,
			Status:           strings.TrimSpace(row[9]),
			PaymentStatus:    strings.TrimSpace(row[10]),
			PaymentMethod:    strings.TrimSpace(row[11]),
			Varieties:        varieties,
			Sources:          []domain.Source{domain.SourceDigitalCookie},
			Raw: map[domain.Source]map[string]string{
				domain.SourceDigitalCookie: {
					"status": strings.TrimSpace(row[9]),
					"type":   strings.TrimSpace(row[5]),
					"line":   strconv.Itoa(lineNum),
				},
			},
		}
		orders = append(orders, o)
	}

	return orders, warnings, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t, nil
}

func rowWarning(wt domain.WarningType, src domain.Source, recordID, raw, msg string) domain.Warning {
	return domain.Warning{
		ID:         uuid.NewString(),
		Type:       wt,
		Source:     src,
		RecordID:   recordID,
		RawValue:   raw,
		Message:    msg,
		DetectedAt: time.Now().UTC(),
	}
}
