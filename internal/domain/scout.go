package domain

// ScoutTotals are a scout's aggregated order and credit figures.
type ScoutTotals struct {
	Orders          int     `json:"orders"`
	Packages        int     `json:"packages"`
	Delivered       int     `json:"delivered"`
	Shipped         int     `json:"shipped"`
	InHand          int     `json:"inHand"`
	Donations       int     `json:"donations"`
	Credited        int     `json:"credited"`
	AmountCollected float64 `json:"amountCollected"`
}

// Inventory is a point-in-time physical inventory snapshot.
type Inventory struct {
	Total     int           `json:"total"`
	Varieties VarietyCounts `json:"varieties"`
}

// NegativeInventory records a per-variety conservation shortfall:
// the scout sold more of a variety than was ever credited to her.
type NegativeInventory struct {
	Variety   Variety `json:"variety"`
	Credited  int     `json:"credited"`
	Sold      int     `json:"sold"`
	Shortfall int     `json:"shortfall"`
}

// ScoutIssues is the per-scout anomaly bag. Issues are surfaced, never
// clamped away.
type ScoutIssues struct {
	NegativeInventory []NegativeInventory `json:"negativeInventory,omitempty"`
}

// Scout is the canonical per-scout record produced by entity
// resolution and filled in by the aggregation stages.
type Scout struct {
	ID                   string                  `json:"id"`
	ScoutID              string                  `json:"scoutId,omitempty"`
	GSUSAID              string                  `json:"gsusaId,omitempty"`
	FirstName            string                  `json:"firstName"`
	LastName             string                  `json:"lastName"`
	DisplayName          string                  `json:"displayName"`
	Site                 bool                    `json:"site"`
	Totals               ScoutTotals             `json:"totals"`
	Inventory            Inventory               `json:"inventory"`
	Allocations          []Allocation            `json:"allocations,omitempty"`
	AllocationsByChannel map[Channel][]Allocation `json:"allocationsByChannel,omitempty"`
	Orders               []Order                 `json:"orders,omitempty"`
	Issues               ScoutIssues             `json:"issues"`
}
