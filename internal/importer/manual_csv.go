package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

// ParseManualCSV parses the troop's manual spreadsheet rows: sales
// recorded outside both vendor systems.
//
// Expected header:
//
//	scout_first,scout_last,order_date,order_type,packages,donations,amount,notes
func ParseManualCSV(data []byte) ([]domain.Order, []domain.Warning, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 7 {
		return nil, nil, fmt.Errorf("expected at least 7 columns, got %d", len(header))
	}

	var orders []domain.Order
	var warnings []domain.Warning
	lineNum := 1

	for {
		lineNum++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(row) < 7 {
			warnings = append(warnings, rowWarning(domain.WarnUnparseableRow, domain.SourceManual,
				fmt.Sprintf("line %d", lineNum), "", fmt.Sprintf("line %d: malformed manual row", lineNum)))
			continue
		}

		packages, perr := strconv.Atoi(strings.TrimSpace(row[4]))
		donations, derr := strconv.Atoi(strings.TrimSpace(row[5]))
		amount, aerr := strconv.ParseFloat(strings.TrimSpace(row[6]), 64)
		date, dterr := parseDate(strings.TrimSpace(row[2]))
		if perr != nil || derr != nil || aerr != nil || dterr != nil {
			warnings = append(warnings, rowWarning(domain.WarnUnparseableRow, domain.SourceManual,
				fmt.Sprintf("line %d", lineNum), strings.Join(row, ","),
				fmt.Sprintf("line %d: bad numeric or date field", lineNum)))
			continue
		}

		varieties := domain.VarietyCounts{}
		if donations > 0 {
			varieties.Add(domain.VarietyCookieShare, donations)
		}

		orders = append(orders, domain.Order{
			Number: fmt.Sprintf("MAN-%d", lineNum),
			Scout: domain.ScoutRef{
				First:  strings.TrimSpace(row[0]),
				Last:   strings.TrimSpace(row[1]),
				Source: domain.SourceManual,
			},
			Date:             date,
			Type:             strings.TrimSpace(row[3]),
			Packages:         packages,
			PhysicalPackages: packages - donations,
			Donations:        donations,
			Amount:           amount,
			Varieties:        varieties,
			Sources:          []domain.Source{domain.SourceManual},
			Raw: map[domain.Source]map[string]string{
				domain.SourceManual: {
					"notes": strings.TrimSpace(row[len(row)-1]),
					"line":  strconv.Itoa(lineNum),
				},
			},
		})
	}

	return orders, warnings, nil
}
