package domain

import "time"

// SiteOrderCategory summarizes one category of troop-owned ("site")
// orders against the allocations that credit them to scouts.
type SiteOrderCategory struct {
	Orders         int  `json:"orders"`
	Packages       int  `json:"packages"`
	Allocated      int  `json:"allocated"`
	Unallocated    int  `json:"unallocated"`
	UnderAllocated bool `json:"underAllocated"`
}

// SiteOrders groups site orders into the three allocation channels.
type SiteOrders struct {
	DirectShip   SiteOrderCategory `json:"directShip"`
	GirlDelivery SiteOrderCategory `json:"girlDelivery"`
	BoothSale    SiteOrderCategory `json:"boothSale"`
}

// TransferTotals are the summed transfer buckets. NetToScouts is
// T2GPhysical minus G2TPhysical.
type TransferTotals struct {
	C2T         int `json:"c2t"`
	T2TOut      int `json:"t2tOut"`
	T2GPhysical int `json:"t2gPhysical"`
	G2TPhysical int `json:"g2tPhysical"`
	NetToScouts int `json:"netToScouts"`
}

// TransferBreakdowns partitions every known transfer into the four
// troop-level buckets, each sorted by date descending.
type TransferBreakdowns struct {
	C2T    []Transfer     `json:"c2t"`
	T2TOut []Transfer     `json:"t2tOut"`
	T2G    []Transfer     `json:"t2g"`
	G2T    []Transfer     `json:"g2t"`
	Totals TransferTotals `json:"totals"`
}

// TroopTotals are the troop-wide aggregates, including the tiered
// proceeds figures and the conservation-derived inventory.
type TroopTotals struct {
	PackagesSold       int           `json:"packagesSold"`
	PackagesCredited   int           `json:"packagesCredited"`
	Donations          int           `json:"donations"`
	AmountCollected    float64       `json:"amountCollected"`
	GrossRetail        float64       `json:"grossRetail"`
	ProceedsRate       float64       `json:"proceedsRate"`
	ProceedsAmount     float64       `json:"proceedsAmount"`
	PGA                float64       `json:"pga"`
	ActiveScouts       int           `json:"activeScouts"`
	Inventory          int           `json:"inventory"`
	InventoryVarieties VarietyCounts `json:"inventoryVarieties"`
	BoothPackages      int           `json:"boothPackages"`
	VirtualBoothPkgs   int           `json:"virtualBoothPackages"`
	DirectShipPackages int           `json:"directShipPackages"`
}

// VarietiesResult holds the global per-variety tallies.
type VarietiesResult struct {
	Received  VarietyCounts `json:"received"`
	ToScouts  VarietyCounts `json:"toScouts"`
	Sold      VarietyCounts `json:"sold"`
	Inventory VarietyCounts `json:"inventory"`
}

// CookieShareTracking reconciles donation ("Cookie Share") entries
// between the storefront and the vendor ledger.
type CookieShareTracking struct {
	StorefrontReported int  `json:"storefrontReported"`
	VendorReported     int  `json:"vendorReported"`
	Virtual            int  `json:"virtual"`
	Difference         int  `json:"difference"`
	Reconciled         bool `json:"reconciled"`
}

// HealthChecks counts anomalies by category. Each counter must equal
// the length of the correspondingly-typed slice of Warnings.
type HealthChecks struct {
	UnknownOrderTypes     int `json:"unknownOrderTypes"`
	UnknownPaymentMethods int `json:"unknownPaymentMethods"`
	UnknownTransferTypes  int `json:"unknownTransferTypes"`
	TotalWarnings         int `json:"totalWarnings"`
}

// ImportInfo records when a source was last imported and how many
// records it contributed.
type ImportInfo struct {
	At      time.Time `json:"at"`
	Records int       `json:"records"`
}

// Metadata is the build metadata attached to every dataset.
type Metadata struct {
	BuiltAt      time.Time             `json:"builtAt"`
	TroopID      string                `json:"troopId"`
	Imports      map[Source]ImportInfo `json:"imports,omitempty"`
	CookieIDMap  map[string]string     `json:"cookieIdMap,omitempty"`
	ScoutCount   int                   `json:"scoutCount"`
	OrderCount   int                   `json:"orderCount"`
	HealthChecks HealthChecks          `json:"healthChecks"`
}

// UnifiedDataset is the sole engine output: one consistent,
// query-ready view of the season. It is created fresh on every run and
// must be treated as read-only by consumers.
type UnifiedDataset struct {
	TroopID            string              `json:"troopId"`
	Scouts             map[string]*Scout   `json:"scouts"`
	SiteOrders         SiteOrders          `json:"siteOrders"`
	TroopTotals        TroopTotals         `json:"troopTotals"`
	TransferBreakdowns TransferBreakdowns  `json:"transferBreakdowns"`
	Varieties          VarietiesResult     `json:"varieties"`
	CookieShare        CookieShareTracking `json:"cookieShare"`
	BoothReservations  []BoothReservation  `json:"boothReservations,omitempty"`
	BoothLocations     []BoothLocation     `json:"boothLocations,omitempty"`
	Warnings           []Warning           `json:"warnings,omitempty"`
	Metadata           Metadata            `json:"metadata"`
}
