package application

import (
	"testing"
	"time"

	"github.com/Maxito7/booking_gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDraftStore_CreateAndGet(t *testing.T) {
	store := NewDraftStore(time.Hour)

	draft := store.Create("room-1")
	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, domain.StepDates, draft.View().Step)

	got, err := store.Get(draft.ID)
	assert.NoError(t, err)
	assert.Same(t, draft, got)
}

func TestDraftStore_UnknownID(t *testing.T) {
	store := NewDraftStore(time.Hour)

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftStore_ExpiredDraftIsGone(t *testing.T) {
	store := NewDraftStore(time.Millisecond)

	draft := store.Create("room-1")
	time.Sleep(5 * time.Millisecond)

	_, err := store.Get(draft.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftStore_Delete(t *testing.T) {
	store := NewDraftStore(time.Hour)

	draft := store.Create("room-1")
	store.Delete(draft.ID)

	_, err := store.Get(draft.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
