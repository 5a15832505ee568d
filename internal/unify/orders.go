package unify

import (
	"fmt"
	"sort"

	"github.com/tyleryates/cookie-tracker-sub004/internal/classify"
	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

// mergeOrders collapses per-source order records that share an order
// number into one record. Sources accumulate; scalar fields keep the
// first imported value, and a numeric conflict between sources is a
// warning condition, never a silent preference.
func (b *builder) mergeOrders() []domain.Order {
	merged := make(map[string]*domain.Order)
	var keys []string

	for i, o := range b.snap.Orders() {
		key := o.Number
		if key == "" {
			// Orders without a vendor number never merge.
			key = fmt.Sprintf("anon-%d", i)
		}

		existing, ok := merged[key]
		if !ok {
			clone := o
			clone.Varieties = o.Varieties.Clone()
			clone.Sources = append([]domain.Source(nil), o.Sources...)
			merged[key] = &clone
			keys = append(keys, key)
			continue
		}

		if existing.Packages != o.Packages && o.Packages != 0 && existing.Packages != 0 {
			b.warn(domain.WarnConflictingSources, o.FirstSource(), o.Number,
				fmt.Sprintf("%d != %d", o.Packages, existing.Packages),
				fmt.Sprintf("order %s: package count differs across sources (%d vs %d), keeping %d",
					o.Number, existing.Packages, o.Packages, existing.Packages))
		}

		for _, src := range o.Sources {
			if !hasSource(existing.Sources, src) {
				existing.Sources = append(existing.Sources, src)
			}
		}
		for src, raw := range o.Raw {
			if existing.Raw == nil {
				existing.Raw = make(map[domain.Source]map[string]string)
			}
			if _, dup := existing.Raw[src]; !dup {
				existing.Raw[src] = raw
			}
		}

		// Fill fields the first source omitted.
		if existing.Packages == 0 {
			existing.Packages = o.Packages
		}
		if existing.PhysicalPackages == 0 {
			existing.PhysicalPackages = o.PhysicalPackages
		}
		if existing.Donations == 0 {
			existing.Donations = o.Donations
		}
		if existing.Amount == 0 {
			existing.Amount = o.Amount
		}
		if existing.Status == "" {
			existing.Status = o.Status
		}
		if existing.PaymentStatus == "" {
			existing.PaymentStatus = o.PaymentStatus
		}
		if existing.PaymentMethod == "" {
			existing.PaymentMethod = o.PaymentMethod
		}
		if existing.Type == "" {
			existing.Type = o.Type
		}
		if len(existing.Varieties) == 0 && len(o.Varieties) > 0 {
			existing.Varieties = o.Varieties.Clone()
		}
		if existing.Scout.Empty() {
			existing.Scout = o.Scout
		}
	}

	sort.Strings(keys)
	out := make([]domain.Order, 0, len(keys))
	for _, k := range keys {
		out = append(out, *merged[k])
	}
	return out
}

func hasSource(sources []domain.Source, src domain.Source) bool {
	for _, s := range sources {
		if s == src {
			return true
		}
	}
	return false
}

// aggregateOrders fills per-scout order totals from the merged orders
// and accumulates the per-scout and troop-wide sold-variety tallies.
func (b *builder) aggregateOrders(orders []domain.Order) {
	for _, o := range orders {
		kind := classify.OrderKind(o.Type)
		if kind == domain.KindUnknown && o.Type != "" {
			b.warn(domain.WarnUnknownOrderType, o.FirstSource(), o.Number, o.Type,
				fmt.Sprintf("order %s: unrecognized order type %q", o.Number, o.Type))
		}
		if classify.PaymentMethod(o.PaymentMethod) == domain.PaymentUnknown && o.PaymentMethod != "" {
			b.warn(domain.WarnUnknownPayment, o.FirstSource(), o.Number, o.PaymentMethod,
				fmt.Sprintf("order %s: unrecognized payment method %q", o.Number, o.PaymentMethod))
		}

		s := b.resolve(o.Scout)
		if s == nil {
			b.warn(domain.WarnUnresolvedScout, o.FirstSource(), o.Number, o.Scout.First+" "+o.Scout.Last,
				fmt.Sprintf("order %s: no scout could be resolved; reported under unallocated site orders", o.Number))
			continue
		}

		s.Orders = append(s.Orders, o)
		s.Totals.Orders++
		s.Totals.Packages += o.Packages
		s.Totals.Donations += o.Donations
		s.Totals.AmountCollected += o.Amount

		switch kind {
		case domain.KindGirlDelivery:
			s.Totals.Delivered += o.PhysicalPackages
		case domain.KindDirectShip:
			s.Totals.Shipped += o.Packages
		case domain.KindInHand:
			s.Totals.InHand += o.PhysicalPackages
		}

		for _, v := range o.Varieties.SortedVarieties() {
			if !v.Physical() {
				continue
			}
			b.sold[s.ID].Add(v, o.Varieties[v])
		}
	}
}

// categorizeSiteOrders builds the site-order report: troop-owned and
// unresolvable orders grouped by delivery channel, compared against
// the packages actually allocated to scouts through the matching
// channel. allocated < total raises the under-allocation flag.
func (b *builder) categorizeSiteOrders(orders []domain.Order, totals domain.TroopTotals) domain.SiteOrders {
	var site domain.SiteOrders

	for _, o := range orders {
		s := b.resolve(o.Scout)
		if s != nil && !s.Site {
			continue
		}
		switch classify.OrderKind(o.Type) {
		case domain.KindDirectShip:
			site.DirectShip.Orders++
			site.DirectShip.Packages += o.Packages
		case domain.KindGirlDelivery:
			site.GirlDelivery.Orders++
			site.GirlDelivery.Packages += o.Packages
		case domain.KindInHand:
			site.BoothSale.Orders++
			site.BoothSale.Packages += o.Packages
		}
	}

	fill := func(c *domain.SiteOrderCategory, allocated int) {
		c.Allocated = allocated
		if allocated < c.Packages {
			c.Unallocated = c.Packages - allocated
			c.UnderAllocated = true
		}
	}
	fill(&site.DirectShip, totals.DirectShipPackages)
	fill(&site.GirlDelivery, totals.VirtualBoothPkgs)
	fill(&site.BoothSale, totals.BoothPackages)
	return site
}
