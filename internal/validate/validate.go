// Package validate runs warn-only shape checks on raw vendor payloads
// before they reach the accumulator. A failed check produces a warning
// for the operator; it never rejects the import.
package validate

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

func warning(wt domain.WarningType, src domain.Source, recordID, raw, msg string) domain.Warning {
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

// Order checks an order record for fields the accumulator expects the
// importer to have guaranteed.
func Order(o domain.Order, src domain.Source) []domain.Warning {
	var ws []domain.Warning
	if o.Number == "" {
		ws = append(ws, warning(domain.WarnUnparseableRow, src, "", "",
			"order without an order number"))
	}
	if o.Packages < 0 {
		ws = append(ws, warning(domain.WarnUnparseableRow, src, o.Number,
			fmt.Sprintf("%d", o.Packages),
			fmt.Sprintf("order %s: negative package count", o.Number)))
	}
	if o.Scout.Empty() {
		ws = append(ws, warning(domain.WarnUnresolvedScout, src, o.Number, "",
			fmt.Sprintf("order %s: no scout reference on the raw row", o.Number)))
	}
	return ws
}

// Transfer checks a transfer record.
func Transfer(t domain.Transfer, src domain.Source) []domain.Warning {
	var ws []domain.Warning
	if t.ID == "" {
		ws = append(ws, warning(domain.WarnUnparseableRow, src, "", "",
			"transfer without an id"))
	}
	if t.Packages < 0 || t.PhysicalPackages < 0 {
		ws = append(ws, warning(domain.WarnUnparseableRow, src, t.ID,
			fmt.Sprintf("%d/%d", t.Packages, t.PhysicalPackages),
			fmt.Sprintf("transfer %s: negative package count", t.ID)))
	}
	return ws
}

// Allocation checks an allocation record.
func Allocation(a domain.Allocation, src domain.Source) []domain.Warning {
	var ws []domain.Warning
	if a.Packages < 0 {
		ws = append(ws, warning(domain.WarnUnparseableRow, src, a.ID,
			fmt.Sprintf("%d", a.Packages),
			fmt.Sprintf("allocation %s: negative package count", a.ID)))
	}
	return ws
}
