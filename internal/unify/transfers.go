package unify

import (
	"fmt"
	"sort"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

// buildTransferBreakdowns partitions every transfer into the four
// troop-level buckets, credits scout pickups and returns, and computes
// the conservation figures:
//
//	troop inventory = C2T - T2TOut - (T2G physical - G2T physical)
//
// which must hold per variety and in aggregate. Unknown categories are
// warned about and excluded from the buckets — never silently dropped.
func (b *builder) buildTransferBreakdowns() (domain.TransferBreakdowns, domain.VarietiesResult) {
	bd := domain.TransferBreakdowns{
		C2T:    []domain.Transfer{},
		T2TOut: []domain.Transfer{},
		T2G:    []domain.Transfer{},
		G2T:    []domain.Transfer{},
	}
	varieties := domain.VarietiesResult{
		Received:  domain.VarietyCounts{},
		ToScouts:  domain.VarietyCounts{},
		Sold:      domain.VarietyCounts{},
		Inventory: domain.VarietyCounts{},
	}

	for _, t := range b.snap.Transfers() {
		switch t.Category {
		case domain.TransferC2T, domain.TransferT2TIn:
			// Troop-to-troop "in" transfers are tagged separately for
			// reporting but sum into the same received bucket.
			bd.C2T = append(bd.C2T, t)
			bd.Totals.C2T += t.Packages
			varieties.Received.Merge(t.Varieties)

		case domain.TransferT2TOut:
			bd.T2TOut = append(bd.T2TOut, t)
			bd.Totals.T2TOut += t.Packages
			varieties.Received.Subtract(t.Varieties)

		case domain.TransferT2G:
			bd.T2G = append(bd.T2G, t)
			bd.Totals.T2GPhysical += t.PhysicalPackages
			b.creditTransfer(t, 1, &varieties)

		case domain.TransferG2T:
			bd.G2T = append(bd.G2T, t)
			bd.Totals.G2TPhysical += t.PhysicalPackages
			b.creditTransfer(t, -1, &varieties)

		case domain.TransferBoothAlloc, domain.TransferVirtualAlloc, domain.TransferDirectShipAlloc:
			// Allocation-category transfers are mirrored as Allocation
			// records by the importer; crediting them here as well
			// would double-count.

		case domain.TransferCookieShare:
			// Accumulated in trackCookieShare.

		default:
			b.warn(domain.WarnUnknownTransfer, t.Source, t.ID, t.RawType,
				fmt.Sprintf("transfer %s: unrecognized type %q excluded from conservation totals", t.ID, t.RawType))
		}
	}

	bd.Totals.NetToScouts = bd.Totals.T2GPhysical - bd.Totals.G2TPhysical

	sortTransfers(bd.C2T)
	sortTransfers(bd.T2TOut)
	sortTransfers(bd.T2G)
	sortTransfers(bd.G2T)

	// Conservation: what the troop received, minus what left to other
	// troops, minus the net movement to scouts, is on-hand inventory.
	inv := varieties.Received.Clone()
	inv.Subtract(varieties.ToScouts)
	varieties.Inventory = inv

	return bd, varieties
}

// creditTransfer applies a T2G pickup (sign +1) or G2T return (-1) to
// the scout's credited tallies and the troop-wide ToScouts figures.
func (b *builder) creditTransfer(t domain.Transfer, sign int, varieties *domain.VarietiesResult) {
	for _, v := range t.Varieties.SortedVarieties() {
		if !v.Physical() {
			continue
		}
		varieties.ToScouts.Add(v, sign*t.Varieties[v])
	}

	s := b.resolve(t.Scout)
	if s == nil {
		b.warn(domain.WarnUnresolvedScout, t.Source, t.ID, t.Scout.First+" "+t.Scout.Last,
			fmt.Sprintf("transfer %s: no scout could be resolved for a %s movement", t.ID, t.Category))
		return
	}

	s.Totals.Credited += sign * t.Packages
	for _, v := range t.Varieties.SortedVarieties() {
		if !v.Physical() {
			continue
		}
		b.credited[s.ID].Add(v, sign*t.Varieties[v])
	}
}

// sortTransfers orders a bucket by transfer date descending, keeping
// the original import order on equal dates.
func sortTransfers(ts []domain.Transfer) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].Date.After(ts[j].Date)
	})
}
