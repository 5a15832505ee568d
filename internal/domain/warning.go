package domain

import "time"

// WarningType classifies an anomaly surfaced during import or unification.
type WarningType string

const (
	WarnUnknownOrderType   WarningType = "UNKNOWN_ORDER_TYPE"
	WarnUnknownPayment     WarningType = "UNKNOWN_PAYMENT_METHOD"
	WarnUnknownTransfer    WarningType = "UNKNOWN_TRANSFER_TYPE"
	WarnUnknownVariety     WarningType = "UNKNOWN_VARIETY"
	WarnUnknownChannel     WarningType = "UNKNOWN_ALLOCATION_CHANNEL"
	WarnConflictingSources WarningType = "CONFLICTING_SOURCES"
	WarnSourceSkipped      WarningType = "SOURCE_SKIPPED"
	WarnUnparseableRow     WarningType = "UNPARSEABLE_ROW"
	WarnUnresolvedScout    WarningType = "UNRESOLVED_SCOUT"
)

// Warning is one anomaly record. It always carries enough context
// (record id, offending raw value) to locate the source record; a
// warning never aborts a build.
type Warning struct {
	ID         string      `json:"id"`
	Type       WarningType `json:"type"`
	Source     Source      `json:"source,omitempty"`
	RecordID   string      `json:"recordId,omitempty"`
	RawValue   string      `json:"rawValue,omitempty"`
	Message    string      `json:"message"`
	DetectedAt time.Time   `json:"detectedAt"`
}
