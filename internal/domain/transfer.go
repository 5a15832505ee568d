package domain

import "time"

// TransferCategory is the closed set of inventory-movement categories.
// Categories outside the set classify as TransferUnknown; the engine
// counts those as warnings rather than dropping them silently.
type TransferCategory string

const (
	TransferC2T             TransferCategory = "C2T"
	TransferT2TIn           TransferCategory = "T2T_IN"
	TransferT2TOut          TransferCategory = "T2T_OUT"
	TransferT2G             TransferCategory = "T2G"
	TransferG2T             TransferCategory = "G2T"
	TransferBoothAlloc      TransferCategory = "BOOTH_ALLOCATION"
	TransferVirtualAlloc    TransferCategory = "VIRTUAL_BOOTH_ALLOCATION"
	TransferDirectShipAlloc TransferCategory = "DIRECT_SHIP_ALLOCATION"
	TransferCookieShare     TransferCategory = "COOKIE_SHARE"
	TransferUnknown         TransferCategory = "UNKNOWN"
)

// Transfer is one inventory movement reported by SC.
type Transfer struct {
	ID               string           `json:"id"`
	Category         TransferCategory `json:"category"`
	RawType          string           `json:"rawType"`
	Date             time.Time        `json:"date"`
	From             string           `json:"from,omitempty"`
	To               string           `json:"to,omitempty"`
	Scout            ScoutRef         `json:"scout,omitempty"`
	Packages         int              `json:"packages"`
	PhysicalPackages int              `json:"physicalPackages"`
	Donations        int              `json:"donations"`
	Varieties        VarietyCounts    `json:"varieties,omitempty"`
	OrderNumber      string           `json:"orderNumber,omitempty"`
	Pending          bool             `json:"pending"`
	Source           Source           `json:"source"`
}

// Channel is the allocation channel crediting packages to scouts.
type Channel string

const (
	ChannelBooth        Channel = "BOOTH"
	ChannelVirtualBooth Channel = "VIRTUAL_BOOTH"
	ChannelDirectShip   Channel = "DIRECT_SHIP"
	ChannelUnknown      Channel = "UNKNOWN"
)

// Allocation credits packages sold through a shared channel to exactly
// one scout. Each record belongs to exactly one channel.
type Allocation struct {
	ID            string        `json:"id"`
	Channel       Channel       `json:"channel"`
	Scout         ScoutRef      `json:"scout"`
	Packages      int           `json:"packages"`
	Donations     int           `json:"donations"`
	Varieties     VarietyCounts `json:"varieties,omitempty"`
	ReservationID string        `json:"reservationId,omitempty"`
	OrderNumber   string        `json:"orderNumber,omitempty"`
	Store         string        `json:"store,omitempty"`
	StartTime     string        `json:"startTime,omitempty"`
	EndTime       string        `json:"endTime,omitempty"`
	Source        Source        `json:"source"`
}

// BoothReservation is a booth slot as imported from SC, passed through
// to the dataset untouched.
type BoothReservation struct {
	ID        string    `json:"id"`
	Store     string    `json:"store"`
	Address   string    `json:"address,omitempty"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime,omitempty"`
	EndTime   string    `json:"endTime,omitempty"`
}

// BoothLocation is a bookable booth site as imported from SC.
type BoothLocation struct {
	ID      string `json:"id"`
	Store   string `json:"store"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Zip     string `json:"zip,omitempty"`
}
