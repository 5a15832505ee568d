package unify

import (
	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
	"github.com/tyleryates/cookie-tracker-sub004/internal/pricing"
)

// proceedsRate returns the per-package proceeds rate for a per-girl
// average. Tiers are inclusive on their lower edge: a PGA of exactly
// 200 earns 0.90, exactly 350 earns 0.95.
func proceedsRate(pga float64) float64 {
	switch {
	case pga < 200:
		return 0.85
	case pga < 350:
		return 0.90
	default:
		return 0.95
	}
}

// computeTroopTotals sums the season figures across scouts and applies
// the tiered proceeds schedule.
func (b *builder) computeTroopTotals(orders []domain.Order, bd domain.TransferBreakdowns, varieties *domain.VarietiesResult) domain.TroopTotals {
	t := domain.TroopTotals{
		Inventory:          bd.Totals.C2T - bd.Totals.T2TOut - bd.Totals.NetToScouts,
		InventoryVarieties: varieties.Inventory,
		BoothPackages:      b.channelTotals[domain.ChannelBooth],
		VirtualBoothPkgs:   b.channelTotals[domain.ChannelVirtualBooth],
		DirectShipPackages: b.channelTotals[domain.ChannelDirectShip],
	}

	active := 0
	for _, id := range b.sortedScoutIDs() {
		s := b.scouts[id]
		t.PackagesSold += s.Totals.Packages
		t.Donations += s.Totals.Donations
		t.AmountCollected += s.Totals.AmountCollected
		if s.Site {
			continue
		}
		t.PackagesCredited += s.Totals.Credited
		if s.Totals.Orders > 0 || s.Totals.Credited > 0 {
			active++
		}
	}

	// Troop-wide sold-variety tally comes from every merged order,
	// including site and unresolved ones.
	for _, o := range orders {
		for _, v := range o.Varieties.SortedVarieties() {
			if v.Physical() {
				varieties.Sold.Add(v, o.Varieties[v])
			}
		}
	}

	if n := b.snap.ScoutCountOverride(); n > 0 {
		active = n
	}
	t.ActiveScouts = active

	if active > 0 {
		t.PGA = float64(t.PackagesCredited) / float64(active)
	}
	t.ProceedsRate = proceedsRate(t.PGA)
	t.ProceedsAmount = pricing.RoundUSD(t.ProceedsRate * float64(t.PackagesCredited))
	t.GrossRetail = pricing.RoundUSD(pricing.Retail(varieties.Sold) +
		pricing.Price(domain.VarietyCookieShare)*float64(t.Donations))

	t.AmountCollected = pricing.RoundUSD(t.AmountCollected)
	return t
}

// trackCookieShare reconciles storefront-reported donation packages
// against the vendor ledger's cookie-share records plus the virtual
// per-scout counts.
func (b *builder) trackCookieShare(orders []domain.Order) domain.CookieShareTracking {
	cs := domain.CookieShareTracking{}

	for _, o := range orders {
		cs.StorefrontReported += o.Donations
	}
	for _, t := range b.snap.Transfers() {
		if t.Category == domain.TransferCookieShare {
			n := t.Donations
			if n == 0 {
				n = t.Packages
			}
			cs.VendorReported += n
		}
	}
	for _, n := range b.snap.VirtualShare() {
		cs.Virtual += n
	}

	cs.Difference = cs.StorefrontReported - (cs.VendorReported + cs.Virtual)
	cs.Reconciled = cs.Difference == 0
	return cs
}
