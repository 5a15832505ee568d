// Package classify maps raw vendor strings onto closed category sets.
// Every classifier returns an explicit Unknown value for unrecognized
// input; none of them panic or error on vendor garbage.
package classify

import (
	"strings"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

// OrderStatus classifies a raw vendor status string.
//
// Precedence is fixed: the "needs approval" marker wins over everything
// else because compound statuses exist ("Needs Approval - Delivered").
// Next an exact "status delivered" match or any completed/delivered/
// shipped substring classifies as COMPLETED, then pending markers, then
// UNKNOWN.
func OrderStatus(raw string) domain.OrderStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return domain.StatusUnknown
	}
	if strings.Contains(s, "needs approval") {
		return domain.StatusNeedsApproval
	}
	if s == "status delivered" {
		return domain.StatusCompleted
	}
	for _, marker := range []string{"completed", "delivered", "shipped"} {
		if strings.Contains(s, marker) {
			return domain.StatusCompleted
		}
	}
	if strings.Contains(s, "pending") || strings.Contains(s, "approved for delivery") {
		return domain.StatusPending
	}
	return domain.StatusUnknown
}

// AutoSyncs reports whether an order auto-syncs to the vendor ledger
// with no manual entry required. The order type must contain the
// "shipped" marker (substring) or equal the "Donation" marker exactly,
// and the payment status must equal the captured marker exactly. A type
// merely containing "donation" as a substring does not qualify.
func AutoSyncs(orderType, paymentStatus string) bool {
	if paymentStatus != domain.PaymentCaptured {
		return false
	}
	t := strings.ToLower(strings.TrimSpace(orderType))
	if strings.Contains(t, "shipped") {
		return true
	}
	return t == "donation"
}

// OrderKind classifies a raw order-type string into the delivery
// channel the order moves through.
func OrderKind(raw string) domain.OrderKind {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case t == "":
		return domain.KindUnknown
	case strings.Contains(t, "ship"):
		return domain.KindDirectShip
	case strings.Contains(t, "donation") || strings.Contains(t, "cookie share"):
		return domain.KindDonation
	case strings.Contains(t, "in hand") || strings.Contains(t, "in-hand") || strings.Contains(t, "booth"):
		return domain.KindInHand
	case strings.Contains(t, "delivery") || strings.Contains(t, "delivered"):
		return domain.KindGirlDelivery
	default:
		return domain.KindUnknown
	}
}

// PaymentMethod classifies a raw payment-method string.
func PaymentMethod(raw string) domain.PaymentMethod {
	m := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case m == "":
		return domain.PaymentUnknown
	case strings.Contains(m, "credit") || strings.Contains(m, "card"):
		return domain.PaymentCreditCard
	case strings.Contains(m, "cash"):
		return domain.PaymentCash
	case strings.Contains(m, "check") || strings.Contains(m, "cheque"):
		return domain.PaymentCheck
	case strings.Contains(m, "venmo"):
		return domain.PaymentVenmo
	default:
		return domain.PaymentUnknown
	}
}

// TransferCategory classifies a raw SC transfer-type string into the
// closed bucket set. Unrecognized types classify as TransferUnknown;
// the engine surfaces those as warnings rather than dropping them.
func TransferCategory(raw string) domain.TransferCategory {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case t == "":
		return domain.TransferUnknown
	case strings.Contains(t, "cupboard") || strings.Contains(t, "council"):
		return domain.TransferC2T
	case strings.Contains(t, "troop to troop in") || t == "t2t in":
		return domain.TransferT2TIn
	case strings.Contains(t, "troop to troop out") || t == "t2t out" || strings.Contains(t, "troop to troop"):
		return domain.TransferT2TOut
	case strings.Contains(t, "return"):
		return domain.TransferG2T
	case strings.Contains(t, "troop to girl") || strings.Contains(t, "girl pickup") || t == "t2g":
		return domain.TransferT2G
	case strings.Contains(t, "girl to troop") || t == "g2t":
		return domain.TransferG2T
	case strings.Contains(t, "virtual"):
		return domain.TransferVirtualAlloc
	case strings.Contains(t, "booth"):
		return domain.TransferBoothAlloc
	case strings.Contains(t, "direct ship"):
		return domain.TransferDirectShipAlloc
	case strings.Contains(t, "cookie share"):
		return domain.TransferCookieShare
	default:
		return domain.TransferUnknown
	}
}

// Channel classifies a raw allocation-channel string.
func Channel(raw string) domain.Channel {
	c := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(c, "virtual"):
		return domain.ChannelVirtualBooth
	case strings.Contains(c, "booth"):
		return domain.ChannelBooth
	case strings.Contains(c, "ship"):
		return domain.ChannelDirectShip
	default:
		return domain.ChannelUnknown
	}
}

// varietyNames maps normalized vendor spellings (including singular/
// plural variants) onto the canonical catalog.
var varietyNames = map[string]domain.Variety{
	"adventureful":          domain.VarietyAdventurefuls,
	"adventurefuls":         domain.VarietyAdventurefuls,
	"do-si-do":              domain.VarietyDoSiDos,
	"do-si-dos":             domain.VarietyDoSiDos,
	"do si dos":             domain.VarietyDoSiDos,
	"dosidos":               domain.VarietyDoSiDos,
	"lemon-up":              domain.VarietyLemonUps,
	"lemon-ups":             domain.VarietyLemonUps,
	"lemon ups":             domain.VarietyLemonUps,
	"samoa":                 domain.VarietySamoas,
	"samoas":                domain.VarietySamoas,
	"caramel delite":        domain.VarietySamoas,
	"caramel delites":       domain.VarietySamoas,
	"s'more":                domain.VarietySmores,
	"s'mores":               domain.VarietySmores,
	"smores":                domain.VarietySmores,
	"girl scout s'mores":    domain.VarietySmores,
	"tagalong":              domain.VarietyTagalongs,
	"tagalongs":             domain.VarietyTagalongs,
	"peanut butter patties": domain.VarietyTagalongs,
	"thin mint":             domain.VarietyThinMints,
	"thin mints":            domain.VarietyThinMints,
	"toffee-tastic":         domain.VarietyToffeeTastic,
	"toffee tastic":         domain.VarietyToffeeTastic,
	"trefoil":               domain.VarietyTrefoils,
	"trefoils":              domain.VarietyTrefoils,
	"shortbread":            domain.VarietyTrefoils,
	"cookie share":          domain.VarietyCookieShare,
	"cookie shares":         domain.VarietyCookieShare,
	"cshare":                domain.VarietyCookieShare,
	"donation":              domain.VarietyCookieShare,
}

// Variety normalizes a free-text vendor variety name onto the canonical
// catalog. The second return is false for unrecognized names; callers
// must surface that as a warning rather than drop the count silently.
func Variety(raw string) (domain.Variety, bool) {
	v, ok := varietyNames[strings.ToLower(strings.TrimSpace(raw))]
	return v, ok
}
