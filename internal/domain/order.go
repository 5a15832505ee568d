package domain

import "time"

// Source identifies which system reported a record.
type Source string

const (
	SourceDigitalCookie Source = "DC"
	SourceSmartCookie   Source = "SC"
	SourceManual        Source = "MANUAL"
)

// OrderStatus is the classified form of a vendor status string.
type OrderStatus string

const (
	StatusNeedsApproval OrderStatus = "NEEDS_APPROVAL"
	StatusCompleted     OrderStatus = "COMPLETED"
	StatusPending       OrderStatus = "PENDING"
	StatusUnknown       OrderStatus = "UNKNOWN"
)

// OrderKind is the classified form of a vendor order-type string.
type OrderKind string

const (
	KindGirlDelivery OrderKind = "GIRL_DELIVERY"
	KindDirectShip   OrderKind = "DIRECT_SHIP"
	KindInHand       OrderKind = "IN_HAND"
	KindDonation     OrderKind = "DONATION"
	KindUnknown      OrderKind = "UNKNOWN"
)

// PaymentMethod is the classified form of a vendor payment-method string.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentCash       PaymentMethod = "CASH"
	PaymentCheck      PaymentMethod = "CHECK"
	PaymentVenmo      PaymentMethod = "VENMO"
	PaymentUnknown    PaymentMethod = "UNKNOWN"
)

// PaymentCaptured is the exact vendor marker for a captured payment.
// The auto-sync rule requires an exact match against it.
const PaymentCaptured = "CAPTURED"

// ScoutRef is a raw scout reference as a source reported it, before
// entity resolution. Either ID or a name may be present.
type ScoutRef struct {
	ID      string `json:"id,omitempty"`
	GSUSAID string `json:"gsusaId,omitempty"`
	First   string `json:"first,omitempty"`
	Last    string `json:"last,omitempty"`
	Source  Source `json:"source,omitempty"`
}

// Empty reports whether the reference carries nothing to resolve on.
func (r ScoutRef) Empty() bool {
	return r.ID == "" && r.First == "" && r.Last == ""
}

// FirstSource returns the first reporting source, for warning context.
func (o Order) FirstSource() Source {
	if len(o.Sources) > 0 {
		return o.Sources[0]
	}
	return ""
}

// Order is one storefront or manual sale transaction. Orders are
// immutable once appended to the accumulator; the engine reads them
// and never writes back.
type Order struct {
	Number           string                       `json:"number"`
	Scout            ScoutRef                     `json:"scout"`
	Date             time.Time                    `json:"date"`
	Type             string                       `json:"type"`
	Packages         int                          `json:"packages"`
	PhysicalPackages int                          `json:"physicalPackages"`
	Donations        int                          `json:"donations"`
	Amount           float64                      `json:"amount"`
	Status           string                       `json:"status"`
	PaymentStatus    string                       `json:"paymentStatus"`
	PaymentMethod    string                       `json:"paymentMethod"`
	Varieties        VarietyCounts                `json:"varieties,omitempty"`
	Sources          []Source                     `json:"sources"`
	Raw              map[Source]map[string]string `json:"raw,omitempty"`
}
