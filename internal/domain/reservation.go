package domain

// Reservation is the read-model projection of an upstream reservation. The
// upstream system owns the record; we only surface the fields needed for
// display.
type Reservation struct {
	ID         string `json:"id"`
	State      string `json:"state"`
	StartUTC   string `json:"startUtc"`
	EndUTC     string `json:"endUtc"`
	AdultCount int    `json:"adultCount"`
	ChildCount int    `json:"childCount"`
	CustomerID string `json:"customerId"`
	RatePlanID string `json:"ratePlanId"`
	CreatedUTC string `json:"createdUtc"`
}

// CustomerSummary is the display projection joined onto reservations by
// customer id.
type CustomerSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// NewReservation is the input for creating a reservation upstream.
// CustomerID is optional; when empty the reservation is created unlinked.
type NewReservation struct {
	RatePlanID string
	StartUTC   string
	EndUTC     string
	AdultCount int
	ChildCount int
	CustomerID string
}

// NewCustomer is the input for creating a customer upstream.
type NewCustomer struct {
	FirstName string
	LastName  string
	Email     string
}
