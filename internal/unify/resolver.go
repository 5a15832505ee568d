package unify

import (
	"strings"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

// siteLastName is the sentinel surname both vendors use for troop-level
// ("site") storefront orders not attributable to an individual scout.
const siteLastName = "site"

// siteKey is the canonical id of the site pseudo-scout.
const siteKey = "site"

// resolveScouts collapses every scout reference across sources into
// canonical Scout shells. References are visited in import order so
// that display-name conflicts resolve last-writer-wins while identity
// fields merge rather than overwrite to null.
func (b *builder) resolveScouts() {
	for _, row := range b.snap.ScoutRows() {
		b.ensure(row)
	}
	for _, o := range b.snap.Orders() {
		b.ensure(o.Scout)
	}
	for _, t := range b.snap.Transfers() {
		b.ensure(t.Scout)
	}
	for _, a := range b.snap.Allocations() {
		b.ensure(a.Scout)
	}
}

func normName(first, last string) string {
	name := strings.Join(strings.Fields(strings.ToLower(first+" "+last)), " ")
	return name
}

func isSiteRef(ref domain.ScoutRef) bool {
	return strings.EqualFold(strings.TrimSpace(ref.Last), siteLastName)
}

// ensure finds or creates the canonical scout for a reference and
// merges the reference's identity fields into it. It returns nil for
// an empty reference; callers surface those records through the
// unallocated bucket instead of failing.
func (b *builder) ensure(ref domain.ScoutRef) *domain.Scout {
	if ref.Empty() {
		return nil
	}
	if isSiteRef(ref) {
		return b.ensureSite(ref)
	}

	idKey := ""
	if ref.ID != "" {
		idKey = "id:" + ref.ID
	}
	nameKey := ""
	if n := normName(ref.First, ref.Last); n != "" {
		nameKey = "name:" + n
	}

	canonical := ""
	if idKey != "" {
		canonical = b.aliases[idKey]
	}
	if canonical == "" && nameKey != "" {
		canonical = b.aliases[nameKey]
	}

	if canonical == "" {
		// Prefer a numeric vendor id as the canonical key; fall back
		// to the normalized name when neither vendor supplied one.
		canonical = idKey
		if canonical == "" {
			canonical = nameKey
		}
		b.scouts[canonical] = &domain.Scout{
			ID:                   canonical,
			Inventory:            domain.Inventory{Varieties: domain.VarietyCounts{}},
			AllocationsByChannel: make(map[domain.Channel][]domain.Allocation),
		}
		b.credited[canonical] = domain.VarietyCounts{}
		b.sold[canonical] = domain.VarietyCounts{}
	}

	s := b.scouts[canonical]
	mergeIdentity(s, ref)

	if idKey != "" {
		b.aliases[idKey] = canonical
	}
	if nameKey != "" {
		b.aliases[nameKey] = canonical
	}
	return s
}

func (b *builder) ensureSite(ref domain.ScoutRef) *domain.Scout {
	s, ok := b.scouts[siteKey]
	if !ok {
		s = &domain.Scout{
			ID:                   siteKey,
			Site:                 true,
			Inventory:            domain.Inventory{Varieties: domain.VarietyCounts{}},
			AllocationsByChannel: make(map[domain.Channel][]domain.Allocation),
		}
		b.scouts[siteKey] = s
		b.credited[siteKey] = domain.VarietyCounts{}
		b.sold[siteKey] = domain.VarietyCounts{}
	}
	mergeIdentity(s, ref)
	return s
}

// mergeIdentity applies the resolution tie-break rules: the most
// recently seen display name wins, but fields the newer source omits
// keep their originally seen values.
func mergeIdentity(s *domain.Scout, ref domain.ScoutRef) {
	if ref.First != "" {
		s.FirstName = ref.First
	}
	if ref.Last != "" {
		s.LastName = ref.Last
	}
	if s.ScoutID == "" && ref.ID != "" {
		s.ScoutID = ref.ID
	}
	if s.GSUSAID == "" && ref.GSUSAID != "" {
		s.GSUSAID = ref.GSUSAID
	}
	if s.FirstName != "" || s.LastName != "" {
		s.DisplayName = strings.TrimSpace(s.FirstName + " " + s.LastName)
	}
}

// resolve looks up the canonical scout for a reference without
// creating one. resolveScouts has already visited every reference, so
// a nil result means the reference is genuinely unresolvable.
func (b *builder) resolve(ref domain.ScoutRef) *domain.Scout {
	if ref.Empty() {
		return nil
	}
	if isSiteRef(ref) {
		return b.scouts[siteKey]
	}
	if ref.ID != "" {
		if canonical, ok := b.aliases["id:"+ref.ID]; ok {
			return b.scouts[canonical]
		}
	}
	if n := normName(ref.First, ref.Last); n != "" {
		if canonical, ok := b.aliases["name:"+n]; ok {
			return b.scouts[canonical]
		}
	}
	return nil
}
