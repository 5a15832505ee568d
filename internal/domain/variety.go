package domain

import "sort"

// Variety is a canonical cookie variety. The season catalog is nine
// physical varieties plus the Cookie Share donation pseudo-variety,
// which never enters physical inventory.
type Variety string

const (
	VarietyAdventurefuls Variety = "Adventurefuls"
	VarietyDoSiDos       Variety = "Do-Si-Dos"
	VarietyLemonUps      Variety = "Lemon-Ups"
	VarietySamoas        Variety = "Samoas"
	VarietySmores        Variety = "S'mores"
	VarietyTagalongs     Variety = "Tagalongs"
	VarietyThinMints     Variety = "Thin Mints"
	VarietyToffeeTastic  Variety = "Toffee-tastic"
	VarietyTrefoils      Variety = "Trefoils"
	VarietyCookieShare   Variety = "Cookie Share"
)

// PhysicalVarieties returns the nine physical varieties in stable order.
func PhysicalVarieties() []Variety {
	return []Variety{
		VarietyAdventurefuls,
		VarietyDoSiDos,
		VarietyLemonUps,
		VarietySamoas,
		VarietySmores,
		VarietyTagalongs,
		VarietyThinMints,
		VarietyToffeeTastic,
		VarietyTrefoils,
	}
}

// AllVarieties returns the full catalog including Cookie Share.
func AllVarieties() []Variety {
	return append(PhysicalVarieties(), VarietyCookieShare)
}

// Physical reports whether the variety occupies physical inventory.
func (v Variety) Physical() bool {
	return v != VarietyCookieShare
}

// VarietyCounts is a per-variety package tally.
type VarietyCounts map[Variety]int

// Add accumulates n packages of v, dropping zero entries on the floor.
func (c VarietyCounts) Add(v Variety, n int) {
	if n == 0 {
		return
	}
	c[v] += n
}

// Merge adds every entry of other into c.
func (c VarietyCounts) Merge(other VarietyCounts) {
	for v, n := range other {
		c.Add(v, n)
	}
}

// Subtract removes every entry of other from c. Results may go negative;
// callers decide whether that is a reportable condition.
func (c VarietyCounts) Subtract(other VarietyCounts) {
	for v, n := range other {
		c.Add(v, -n)
	}
}

// Total sums all entries.
func (c VarietyCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// PhysicalTotal sums entries for physical varieties only.
func (c VarietyCounts) PhysicalTotal() int {
	total := 0
	for v, n := range c {
		if v.Physical() {
			total += n
		}
	}
	return total
}

// Clone returns an independent copy.
func (c VarietyCounts) Clone() VarietyCounts {
	out := make(VarietyCounts, len(c))
	for v, n := range c {
		out[v] = n
	}
	return out
}

// SortedVarieties returns the keys of c in lexical order, for
// deterministic iteration.
func (c VarietyCounts) SortedVarieties() []Variety {
	keys := make([]Variety, 0, len(c))
	for v := range c {
		keys = append(keys, v)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
