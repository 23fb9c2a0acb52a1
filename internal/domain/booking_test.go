package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func draftAtRate(t *testing.T) *BookingDraft {
	t.Helper()

	draft := NewBookingDraft("draft-1", "room-1")
	assert.NoError(t, draft.SetDates("2025-06-10", "2025-06-12", 2, 0))
	draft.AttachRates([]RatePlan{
		{ID: "rate-1", Name: "Fully Flexible Rate"},
		{ID: "rate-2", Name: "Non-Refundable"},
	})

	return draft
}

func draftAtConfirm(t *testing.T) *BookingDraft {
	t.Helper()

	draft := draftAtRate(t)
	assert.NoError(t, draft.SelectRate("rate-1"))
	assert.NoError(t, draft.SetGuest("Ada", "Lovelace", "ada@example.com"))

	return draft
}

func TestSetDates_RejectsNonPositiveStay(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"same day", "2025-06-10", "2025-06-10"},
		{"inverted", "2025-06-12", "2025-06-10"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := NewBookingDraft("draft-1", "room-1")
			err := draft.SetDates(tc.checkIn, tc.checkOut, 2, 0)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, StepDates, draft.View().Step)
		})
	}
}

func TestSetDates_AdvancesToRate(t *testing.T) {
	draft := NewBookingDraft("draft-1", "room-1")

	assert.NoError(t, draft.SetDates("2025-06-10", "2025-06-12", 2, 1))

	view := draft.View()
	assert.Equal(t, StepRate, view.Step)
	assert.Equal(t, "2025-06-10", view.CheckIn)
	assert.Equal(t, 2, view.Adults)
	assert.Equal(t, 1, view.Children)
}

func TestSetDates_ValidatesInput(t *testing.T) {
	draft := NewBookingDraft("draft-1", "room-1")

	assert.Error(t, draft.SetDates("", "2025-06-12", 2, 0))
	assert.Error(t, draft.SetDates("June 10", "2025-06-12", 2, 0))
	assert.Error(t, draft.SetDates("2025-06-10", "2025-06-12", 0, 0))
	assert.Error(t, draft.SetDates("2025-06-10", "2025-06-12", 2, -1))
}

func TestSelectRate_RequiresCatalogMembership(t *testing.T) {
	draft := draftAtRate(t)

	err := draft.SelectRate("rate-unknown")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, StepRate, draft.View().Step)

	assert.NoError(t, draft.SelectRate("rate-2"))
	view := draft.View()
	assert.Equal(t, StepDetails, view.Step)
	assert.Equal(t, "rate-2", view.Selected.ID)
}

func TestSelectRate_OnlyFromRateStep(t *testing.T) {
	draft := NewBookingDraft("draft-1", "room-1")

	err := draft.SelectRate("rate-1")

	var workflowErr *WorkflowError
	assert.ErrorAs(t, err, &workflowErr)
}

func TestSetGuest_TrimsAndRequiresAllFields(t *testing.T) {
	draft := draftAtRate(t)
	assert.NoError(t, draft.SelectRate("rate-1"))

	assert.Error(t, draft.SetGuest("   ", "Lovelace", "ada@example.com"))
	assert.Error(t, draft.SetGuest("Ada", "", "ada@example.com"))
	assert.Error(t, draft.SetGuest("Ada", "Lovelace", "  "))

	assert.NoError(t, draft.SetGuest("  Ada ", " Lovelace ", " ada@example.com "))
	view := draft.View()
	assert.Equal(t, StepConfirm, view.Step)
	assert.Equal(t, Guest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, view.Guest)
}

func TestBack_PreservesFields(t *testing.T) {
	draft := draftAtConfirm(t)

	assert.NoError(t, draft.Back()) // confirm -> details
	assert.NoError(t, draft.Back()) // details -> rate
	assert.NoError(t, draft.Back()) // rate -> dates

	view := draft.View()
	assert.Equal(t, StepDates, view.Step)
	assert.Equal(t, "2025-06-10", view.CheckIn)
	assert.Equal(t, "rate-1", view.Selected.ID)
	assert.Equal(t, "Ada", view.Guest.FirstName)

	err := draft.Back()
	var workflowErr *WorkflowError
	assert.ErrorAs(t, err, &workflowErr)
}

func TestCommitLifecycle_SuccessAndReset(t *testing.T) {
	draft := draftAtConfirm(t)

	assert.NoError(t, draft.BeginCommit())
	draft.FinishCommit(nil)

	view := draft.View()
	assert.Equal(t, StepSuccess, view.Step)
	assert.Empty(t, view.LastError)

	assert.NoError(t, draft.ResetForNewBooking())
	view = draft.View()
	assert.Equal(t, StepDates, view.Step)
	assert.Nil(t, view.Selected)
	assert.Equal(t, Guest{}, view.Guest)
}

func TestCommitLifecycle_FailureReturnsToConfirm(t *testing.T) {
	draft := draftAtConfirm(t)

	assert.NoError(t, draft.BeginCommit())
	draft.FinishCommit(errors.New("customer creation failed"))

	view := draft.View()
	assert.Equal(t, StepFailed, view.Step)
	assert.Contains(t, view.LastError, "customer creation failed")

	// failed is not a dead end: retry directly or step back to confirm
	assert.NoError(t, draft.Back())
	assert.Equal(t, StepConfirm, draft.View().Step)
	assert.NoError(t, draft.BeginCommit())
	draft.FinishCommit(nil)
	assert.Equal(t, StepSuccess, draft.View().Step)
}

func TestBeginCommit_RejectsConcurrentAttempt(t *testing.T) {
	draft := draftAtConfirm(t)

	assert.NoError(t, draft.BeginCommit())

	err := draft.BeginCommit()
	var workflowErr *WorkflowError
	assert.ErrorAs(t, err, &workflowErr)

	// and mutations are frozen while the commit is in flight
	assert.Error(t, draft.Back())
	assert.Error(t, draft.SetGuest("Eve", "Intruder", "eve@example.com"))
}

func TestBeginCommit_OnlyFromConfirm(t *testing.T) {
	draft := draftAtRate(t)

	err := draft.BeginCommit()

	var workflowErr *WorkflowError
	assert.ErrorAs(t, err, &workflowErr)
}

func TestResetForNewBooking_OnlyAfterSuccess(t *testing.T) {
	draft := draftAtConfirm(t)

	err := draft.ResetForNewBooking()

	var workflowErr *WorkflowError
	assert.ErrorAs(t, err, &workflowErr)
}

func TestStayInstants(t *testing.T) {
	draft := draftAtConfirm(t)

	start, end, err := draft.StayInstants()

	assert.NoError(t, err)
	assert.Equal(t, "2025-06-10T00:00:00Z", start)
	assert.Equal(t, "2025-06-12T00:00:00Z", end)
}
