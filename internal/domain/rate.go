package domain

// RatePlan is a bookable rate as shown to the guest. Name is never empty
// (falls back to a placeholder); Description may be empty but never absent.
type RatePlan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Featured    bool   `json:"featured"`
}
