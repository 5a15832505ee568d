package unify

import (
	"fmt"
	"sort"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

// creditAllocations distributes booth, virtual-booth and direct-ship
// allocations to scouts. Each allocation is credited to exactly one
// scout and exactly one channel; the engine never infers a missing
// allocation from an order — absence is reported through the
// site-order categories instead.
func (b *builder) creditAllocations() {
	for _, a := range b.snap.Allocations() {
		if a.Channel == domain.ChannelUnknown {
			b.warn(domain.WarnUnknownChannel, a.Source, a.ID, string(a.Channel),
				fmt.Sprintf("allocation %s: unrecognized channel, credited outside channel totals", a.ID))
		}

		s := b.resolve(a.Scout)
		if s == nil {
			b.warn(domain.WarnUnresolvedScout, a.Source, a.ID, a.Scout.First+" "+a.Scout.Last,
				fmt.Sprintf("allocation %s: no scout could be resolved; packages remain unallocated", a.ID))
			continue
		}

		s.Allocations = append(s.Allocations, a)
		s.AllocationsByChannel[a.Channel] = append(s.AllocationsByChannel[a.Channel], a)
		s.Totals.Credited += a.Packages
		s.Totals.Donations += a.Donations

		for _, v := range a.Varieties.SortedVarieties() {
			if !v.Physical() {
				continue
			}
			b.credited[s.ID].Add(v, a.Varieties[v])
		}

		if a.Channel != domain.ChannelUnknown {
			b.channelTotals[a.Channel] += a.Packages
		}
	}
}

// computeInventories derives each scout's per-variety inventory as
// credited minus sold. Negative values stay negative and are recorded
// as explicit issues; clamping would hide a conservation violation.
// The site pseudo-scout sells straight from troop inventory and is
// skipped.
func (b *builder) computeInventories() {
	for _, id := range b.sortedScoutIDs() {
		s := b.scouts[id]
		if s.Site {
			continue
		}

		inv := b.credited[id].Clone()
		inv.Subtract(b.sold[id])

		for _, v := range inv.SortedVarieties() {
			if inv[v] < 0 {
				s.Issues.NegativeInventory = append(s.Issues.NegativeInventory, domain.NegativeInventory{
					Variety:   v,
					Credited:  b.credited[id][v],
					Sold:      b.sold[id][v],
					Shortfall: -inv[v],
				})
			}
		}

		s.Inventory = domain.Inventory{Total: inv.Total(), Varieties: inv}
	}
}

func (b *builder) sortedScoutIDs() []string {
	ids := make([]string, 0, len(b.scouts))
	for id := range b.scouts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
