package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/Maxito7/booking_gateway/internal/domain"
	"github.com/google/uuid"
)

// draftEntry tracks when a draft was last touched so abandoned sessions can
// be evicted.
type draftEntry struct {
	draft      *domain.BookingDraft
	lastAccess time.Time
}

// DraftStore keeps booking drafts in memory, one per browsing session. The
// upstream PMS never sees a draft; only a successful commit reaches it.
// Abandoned drafts expire after the TTL.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]*draftEntry
	ttl    time.Duration
}

// NewDraftStore creates a store and starts its periodic cleanup.
func NewDraftStore(ttl time.Duration) *DraftStore {
	store := &DraftStore{
		drafts: make(map[string]*draftEntry),
		ttl:    ttl,
	}

	go store.cleanupLoop()

	return store
}

// Create starts a new draft for the given room and returns it.
func (ds *DraftStore) Create(roomID string) *domain.BookingDraft {
	draft := domain.NewBookingDraft(uuid.NewString(), roomID)

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.drafts[draft.ID] = &draftEntry{
		draft:      draft,
		lastAccess: time.Now(),
	}

	return draft
}

// Get returns the draft for the given id and refreshes its expiry. Unknown
// and expired ids report domain.ErrNotFound.
func (ds *DraftStore) Get(id string) (*domain.BookingDraft, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	entry, exists := ds.drafts[id]
	if !exists {
		return nil, fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}
	if time.Since(entry.lastAccess) > ds.ttl {
		delete(ds.drafts, id)
		return nil, fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}

	entry.lastAccess = time.Now()

	return entry.draft, nil
}

// Delete discards a draft, typically when the guest navigates away.
func (ds *DraftStore) Delete(id string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.drafts, id)
}

func (ds *DraftStore) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ds.cleanup()
	}
}

func (ds *DraftStore) cleanup() {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	for id, entry := range ds.drafts {
		if time.Since(entry.lastAccess) > ds.ttl {
			delete(ds.drafts, id)
		}
	}
}
