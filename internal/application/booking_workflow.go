package application

import (
	"context"
	"fmt"
	"log"

	"github.com/Maxito7/booking_gateway/internal/domain"
)

// ConfirmationMailer sends the optional booking-confirmation message after a
// successful commit.
type ConfirmationMailer interface {
	SendBookingConfirmation(to, guestName, rateName, checkIn, checkOut string) error
}

// BookingWorkflow drives a guest through the booking steps: dates, rate,
// guest details, confirmation, and the two-call commit against the upstream
// PMS. Per-draft guards live on the draft itself; this service adds the
// pieces that need upstream access.
type BookingWorkflow struct {
	drafts       *DraftStore
	rooms        *RoomService
	rates        *RateService
	reservations *ReservationService
	mailer       ConfirmationMailer
}

// NewBookingWorkflow creates the workflow service. mailer may be nil, in
// which case no confirmation emails are sent.
func NewBookingWorkflow(
	drafts *DraftStore,
	rooms *RoomService,
	rates *RateService,
	reservations *ReservationService,
	mailer ConfirmationMailer,
) *BookingWorkflow {
	return &BookingWorkflow{
		drafts:       drafts,
		rooms:        rooms,
		rates:        rates,
		reservations: reservations,
		mailer:       mailer,
	}
}

// StartDraft opens a draft for one room. The room must exist in the current
// catalog.
func (w *BookingWorkflow) StartDraft(ctx context.Context, roomID string) (*domain.BookingDraft, error) {
	if _, err := w.rooms.GetRoom(ctx, roomID, nil); err != nil {
		return nil, err
	}

	return w.drafts.Create(roomID), nil
}

// GetDraft looks up a draft by id.
func (w *BookingWorkflow) GetDraft(id string) (*domain.BookingDraft, error) {
	return w.drafts.Get(id)
}

// DiscardDraft drops a draft, e.g. when the guest navigates away.
func (w *BookingWorkflow) DiscardDraft(id string) {
	w.drafts.Delete(id)
}

// SubmitDates advances dates -> rate. On first entry into the rate step the
// rate catalog is fetched once and cached on the draft for the rest of the
// session. If that fetch fails the draft is stepped back so the guest can
// retry, and the upstream error propagates.
func (w *BookingWorkflow) SubmitDates(ctx context.Context, draftID, checkIn, checkOut string, adults, children int) (*domain.BookingDraft, error) {
	draft, err := w.drafts.Get(draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.SetDates(checkIn, checkOut, adults, children); err != nil {
		return nil, err
	}

	if !draft.HasRates() {
		rates, err := w.rates.ListRates(ctx)
		if err != nil {
			if backErr := draft.Back(); backErr != nil {
				log.Printf("could not step draft %s back after rate fetch failure: %v", draftID, backErr)
			}
			return nil, fmt.Errorf("error loading rate catalog: %w", err)
		}
		draft.AttachRates(rates)
	}

	return draft, nil
}

// SelectRate advances rate -> details.
func (w *BookingWorkflow) SelectRate(draftID, rateID string) (*domain.BookingDraft, error) {
	draft, err := w.drafts.Get(draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.SelectRate(rateID); err != nil {
		return nil, err
	}

	return draft, nil
}

// SubmitDetails advances details -> confirm.
func (w *BookingWorkflow) SubmitDetails(draftID, firstName, lastName, email string) (*domain.BookingDraft, error) {
	draft, err := w.drafts.Get(draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.SetGuest(firstName, lastName, email); err != nil {
		return nil, err
	}

	return draft, nil
}

// Back moves a draft one step backwards, preserving everything entered.
func (w *BookingWorkflow) Back(draftID string) (*domain.BookingDraft, error) {
	draft, err := w.drafts.Get(draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.Back(); err != nil {
		return nil, err
	}

	return draft, nil
}

// Reset starts a fresh booking on a successfully committed draft.
func (w *BookingWorkflow) Reset(draftID string) (*domain.BookingDraft, error) {
	draft, err := w.drafts.Get(draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.ResetForNewBooking(); err != nil {
		return nil, err
	}

	return draft, nil
}

// Commit runs the two-call booking sequence: create the customer, then the
// reservation linked to it. The calls are strictly sequential and the draft's
// in-flight flag makes the sequence single-shot; a concurrent attempt is
// rejected with a WorkflowError. The customer call must succeed before the
// reservation call is issued; if the reservation call then fails the customer
// is NOT removed — the upstream system is the record of truth and the orphan
// is reconciled there.
func (w *BookingWorkflow) Commit(ctx context.Context, draftID string) (*domain.BookingDraft, error) {
	draft, err := w.drafts.Get(draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.BeginCommit(); err != nil {
		return nil, err
	}

	commitErr := w.runCommit(ctx, draft)
	draft.FinishCommit(commitErr)

	return draft, commitErr
}

func (w *BookingWorkflow) runCommit(ctx context.Context, draft *domain.BookingDraft) error {
	rate, guest, adults, children := draft.CommitInput()

	startUTC, endUTC, err := draft.StayInstants()
	if err != nil {
		return err
	}

	customer, err := w.reservations.CreateCustomer(ctx, domain.NewCustomer{
		FirstName: guest.FirstName,
		LastName:  guest.LastName,
		Email:     guest.Email,
	})
	if err != nil {
		return fmt.Errorf("customer creation failed: %w", err)
	}

	// The reservation is still attempted without a customer link when the
	// upstream echoed no id.
	customerID := ""
	if customer != nil {
		customerID = customer.ID
	}

	_, err = w.reservations.CreateReservation(ctx, domain.NewReservation{
		RatePlanID: rate.ID,
		StartUTC:   startUTC,
		EndUTC:     endUTC,
		AdultCount: adults,
		ChildCount: children,
		CustomerID: customerID,
	})
	if err != nil {
		return fmt.Errorf("reservation creation failed: %w", err)
	}

	if w.mailer != nil {
		view := draft.View()
		if mailErr := w.mailer.SendBookingConfirmation(guest.Email, guest.FirstName+" "+guest.LastName, rate.Name, view.CheckIn, view.CheckOut); mailErr != nil {
			log.Printf("confirmation email for draft %s not sent: %v", draft.ID, mailErr)
		}
	}

	return nil
}
