package mews

// Wire DTOs for the two Mews API surfaces. Field names mirror the upstream
// PascalCase JSON properties.

// RatesGetAllResponse is the payload of connector rates/getAll.
type RatesGetAllResponse struct {
	Rates []Rate `json:"Rates"`
}

// Rate is one upstream rate plan.
type Rate struct {
	ID          string        `json:"Id"`
	Name        LocalizedText `json:"Name"`
	ShortName   LocalizedText `json:"ShortName"`
	Description LocalizedText `json:"Description"`
	IsActive    bool          `json:"IsActive"`
	IsPublic    bool          `json:"IsPublic"`
}

// HotelsGetResponse is the payload of distributor hotels/get.
type HotelsGetResponse struct {
	RoomCategories []RoomCategory `json:"RoomCategories"`
}

// RoomCategory is one upstream room category with unresolved localized text
// and raw image ids.
type RoomCategory struct {
	ID             string        `json:"Id"`
	Name           LocalizedText `json:"Name"`
	Description    LocalizedText `json:"Description"`
	ImageIDs       []string      `json:"ImageIds"`
	NormalBedCount int           `json:"NormalBedCount"`
	ExtraBedCount  int           `json:"ExtraBedCount"`
	SpaceType      string        `json:"SpaceType"`
}

// HotelsGetAvailabilityResponse is the payload of distributor
// hotels/getAvailability.
type HotelsGetAvailabilityResponse struct {
	RoomCategoryAvailabilities []RoomCategoryAvailability `json:"RoomCategoryAvailabilities"`
}

// RoomCategoryAvailability carries the free-room count and pricing options
// for one category.
type RoomCategoryAvailability struct {
	RoomCategoryID              string                      `json:"RoomCategoryId"`
	AvailableRoomCount          int                         `json:"AvailableRoomCount"`
	RoomOccupancyAvailabilities []RoomOccupancyAvailability `json:"RoomOccupancyAvailabilities"`
}

// RoomOccupancyAvailability lists the pricing options for one occupancy.
type RoomOccupancyAvailability struct {
	Pricing []PricingOption `json:"Pricing"`
}

// PricingOption is one priced offer.
type PricingOption struct {
	Price Price `json:"Price"`
}

// Price carries totals keyed by currency code.
type Price struct {
	Total map[string]float64 `json:"Total"`
}

// ReservationsGetAllResponse is the payload of connector reservations/getAll
// with the Customers extent enabled.
type ReservationsGetAllResponse struct {
	Reservations []Reservation `json:"Reservations"`
	Customers    []Customer    `json:"Customers"`
}

// Reservation is one upstream reservation record.
type Reservation struct {
	ID         string `json:"Id"`
	State      string `json:"State"`
	StartUTC   string `json:"StartUtc"`
	EndUTC     string `json:"EndUtc"`
	AdultCount int    `json:"AdultCount"`
	ChildCount int    `json:"ChildCount"`
	CustomerID string `json:"CustomerId"`
	RatePlanID string `json:"RatePlanId"`
	CreatedUTC string `json:"CreatedUtc"`
}

// Customer is one upstream customer record, also the response of
// customers/add.
type Customer struct {
	ID        string `json:"Id"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Email     string `json:"Email"`
}
