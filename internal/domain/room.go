package domain

// RoomCategory is one bookable room/unit type from the hotel metadata,
// normalized for display: localized text resolved, image ids already joined
// onto the CDN base URL. Never mutated after construction.
type RoomCategory struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	ImageURL      *string  `json:"imageUrl"`
	ImageURLs     []string `json:"imageIds"`
	BedCount      int      `json:"bedCount"`
	ExtraBedCount int      `json:"extraBedCount"`
	SpaceType     string   `json:"spaceType"`
}

// Availability is the per-category result of an availability/pricing query.
// An absent entry in the map means "unknown/not requested", which is distinct
// from AvailableCount == 0 (sold out).
type Availability struct {
	AvailableCount int
	PriceTotal     *float64
}

// RoomView joins a RoomCategory with its (optional) availability. Available
// and TotalPrice stay nil when no date range was supplied or the availability
// fetch degraded.
type RoomView struct {
	RoomCategory
	Available  *int     `json:"available"`
	TotalPrice *float64 `json:"totalPrice"`
}

// StayQuery is a validated date range plus occupancy for availability lookups.
type StayQuery struct {
	StartUTC string
	EndUTC   string
	Adults   int
	Children int
}
