package domain

import (
	"strings"
	"sync"
	"time"
)

// BookingStep is the current position of a draft in the booking workflow.
type BookingStep string

const (
	StepDates   BookingStep = "dates"
	StepRate    BookingStep = "rate"
	StepDetails BookingStep = "details"
	StepConfirm BookingStep = "confirm"
	StepSuccess BookingStep = "success"
	StepFailed  BookingStep = "failed"
)

// Guest holds the details collected in the details step.
type Guest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// BookingDraft is the in-progress, not-yet-committed booking for one browsing
// session. All transitions go through the guarded methods below; the mutex
// also backs the commit in-flight flag, so a draft is safe for concurrent use.
type BookingDraft struct {
	mu         sync.Mutex
	committing bool

	ID         string
	RoomID     string
	Step       BookingStep
	CheckIn    string // YYYY-MM-DD
	CheckOut   string // YYYY-MM-DD
	Adults     int
	Children   int
	Rates      []RatePlan // catalog cached for the session, loaded on first entry into the rate step
	Selected   *RatePlan
	Guest      Guest
	LastError  string
	CreatedUTC time.Time
}

// NewBookingDraft starts a fresh draft for the given room at the dates step.
func NewBookingDraft(id, roomID string) *BookingDraft {
	return &BookingDraft{
		ID:         id,
		RoomID:     roomID,
		Step:       StepDates,
		Adults:     2,
		Children:   0,
		CreatedUTC: time.Now().UTC(),
	}
}

// SetDates validates the stay and advances dates -> rate. Dates are compared
// as normalized YYYY-MM-DD strings, so lexicographic order is calendar order.
func (d *BookingDraft) SetDates(checkIn, checkOut string, adults, children int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.rejectWhileCommitting(); err != nil {
		return err
	}
	if d.Step != StepDates {
		return &WorkflowError{Step: d.Step, Reason: "dates can only be set in the dates step"}
	}
	if checkIn == "" || checkOut == "" {
		return NewValidationError("checkIn/checkOut", "are required")
	}
	if _, err := time.Parse("2006-01-02", checkIn); err != nil {
		return NewValidationError("checkIn", "must be a YYYY-MM-DD date")
	}
	if _, err := time.Parse("2006-01-02", checkOut); err != nil {
		return NewValidationError("checkOut", "must be a YYYY-MM-DD date")
	}
	if checkIn >= checkOut {
		return NewValidationError("checkIn", "must be before checkOut")
	}
	if adults < 1 {
		return NewValidationError("adults", "must be at least 1")
	}
	if children < 0 {
		return NewValidationError("children", "must not be negative")
	}

	d.CheckIn = checkIn
	d.CheckOut = checkOut
	d.Adults = adults
	d.Children = children
	d.Step = StepRate

	return nil
}

// HasRates reports whether the session rate catalog is already loaded.
func (d *BookingDraft) HasRates() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Rates != nil
}

// AttachRates caches the fetched rate catalog on the draft.
func (d *BookingDraft) AttachRates(rates []RatePlan) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if rates == nil {
		rates = []RatePlan{}
	}
	d.Rates = rates
}

// SelectRate picks a rate from the cached catalog and advances rate -> details.
// Choosing a rate is the only way forward from the rate step.
func (d *BookingDraft) SelectRate(rateID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.rejectWhileCommitting(); err != nil {
		return err
	}
	if d.Step != StepRate {
		return &WorkflowError{Step: d.Step, Reason: "a rate can only be selected in the rate step"}
	}
	for i := range d.Rates {
		if d.Rates[i].ID == rateID {
			rate := d.Rates[i]
			d.Selected = &rate
			d.Step = StepDetails
			return nil
		}
	}

	return NewValidationError("rateId", "is not part of the available rate catalog")
}

// SetGuest validates the guest details and advances details -> confirm.
// Fields must be non-empty after trimming; email format is not checked here.
func (d *BookingDraft) SetGuest(firstName, lastName, email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.rejectWhileCommitting(); err != nil {
		return err
	}
	if d.Step != StepDetails {
		return &WorkflowError{Step: d.Step, Reason: "guest details can only be set in the details step"}
	}

	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	if firstName == "" {
		return NewValidationError("firstName", "is required")
	}
	if lastName == "" {
		return NewValidationError("lastName", "is required")
	}
	if email == "" {
		return NewValidationError("email", "is required")
	}

	d.Guest = Guest{FirstName: firstName, LastName: lastName, Email: email}
	d.Step = StepConfirm

	return nil
}

// Back moves one step backwards. Fields are preserved so the guest can edit
// and come forward again. A failed draft goes back to confirm for a retry.
func (d *BookingDraft) Back() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.rejectWhileCommitting(); err != nil {
		return err
	}

	switch d.Step {
	case StepRate:
		d.Step = StepDates
	case StepDetails:
		d.Step = StepRate
	case StepConfirm:
		d.Step = StepDetails
	case StepFailed:
		d.Step = StepConfirm
	default:
		return &WorkflowError{Step: d.Step, Reason: "no step to go back to"}
	}

	return nil
}

// BeginCommit marks the draft as committing. Exactly one caller wins; any
// concurrent attempt gets a WorkflowError, because the two upstream calls are
// not idempotent. A failed draft may retry directly.
func (d *BookingDraft) BeginCommit() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.committing {
		return &WorkflowError{Step: d.Step, Reason: "a commit is already in flight"}
	}
	if d.Step != StepConfirm && d.Step != StepFailed {
		return &WorkflowError{Step: d.Step, Reason: "commit is only allowed from the confirm step"}
	}
	if d.Selected == nil {
		return &WorkflowError{Step: d.Step, Reason: "no rate selected"}
	}

	d.committing = true
	d.LastError = ""

	return nil
}

// FinishCommit records the commit outcome and clears the in-flight flag.
func (d *BookingDraft) FinishCommit(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.committing = false
	if err != nil {
		d.Step = StepFailed
		d.LastError = err.Error()
		return
	}
	d.Step = StepSuccess
}

// ResetForNewBooking clears the selected rate, guest fields and result after
// a successful booking and returns to the dates step. The session rate
// catalog stays cached.
func (d *BookingDraft) ResetForNewBooking() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.rejectWhileCommitting(); err != nil {
		return err
	}
	if d.Step != StepSuccess {
		return &WorkflowError{Step: d.Step, Reason: "only a successful booking can be restarted"}
	}

	d.Selected = nil
	d.Guest = Guest{}
	d.LastError = ""
	d.Step = StepDates

	return nil
}

// StayInstants converts the draft's calendar dates into the UTC instants the
// upstream reservation call expects.
func (d *BookingDraft) StayInstants() (startUTC, endUTC string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	start, err := time.Parse("2006-01-02", d.CheckIn)
	if err != nil {
		return "", "", NewValidationError("checkIn", "must be a YYYY-MM-DD date")
	}
	end, err := time.Parse("2006-01-02", d.CheckOut)
	if err != nil {
		return "", "", NewValidationError("checkOut", "must be a YYYY-MM-DD date")
	}

	return start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339), nil
}

func (d *BookingDraft) rejectWhileCommitting() error {
	if d.committing {
		return &WorkflowError{Step: d.Step, Reason: "a commit is in flight"}
	}
	return nil
}

// DraftView is the JSON projection of a draft handed to clients.
type DraftView struct {
	ID        string      `json:"id"`
	RoomID    string      `json:"roomId"`
	Step      BookingStep `json:"step"`
	CheckIn   string      `json:"checkIn"`
	CheckOut  string      `json:"checkOut"`
	Adults    int         `json:"adults"`
	Children  int         `json:"children"`
	Rates     []RatePlan  `json:"rates,omitempty"`
	Selected  *RatePlan   `json:"selectedRate,omitempty"`
	Guest     Guest       `json:"guest"`
	LastError string      `json:"error,omitempty"`
}

// View snapshots the draft for serialization.
func (d *BookingDraft) View() DraftView {
	d.mu.Lock()
	defer d.mu.Unlock()

	var selected *RatePlan
	if d.Selected != nil {
		rate := *d.Selected
		selected = &rate
	}

	return DraftView{
		ID:        d.ID,
		RoomID:    d.RoomID,
		Step:      d.Step,
		CheckIn:   d.CheckIn,
		CheckOut:  d.CheckOut,
		Adults:    d.Adults,
		Children:  d.Children,
		Rates:     d.Rates,
		Selected:  selected,
		Guest:     d.Guest,
		LastError: d.LastError,
	}
}

// CommitInput returns the fields the commit sequence needs, read atomically.
func (d *BookingDraft) CommitInput() (rate RatePlan, guest Guest, adults, children int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return *d.Selected, d.Guest, d.Adults, d.Children
}
