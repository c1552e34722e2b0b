package usecase

import (
	"sort"
	"sync"

	"github.com/adhiwira/kapten/internal/pkg/models"
)

// registryEntry pairs an offer with its insertion sequence so ties on
// CreatedAt keep a stable order.
type registryEntry struct {
	offer models.TripOffer
	seq   uint64
}

// OfferRegistry is the in-memory set of unclaimed offers, deduplicated
// across the presence channel and the poller. First-seen data wins; an
// offer whose id matches the current active trip is silently dropped.
type OfferRegistry struct {
	mu       sync.RWMutex
	entries  map[string]registryEntry
	seq      uint64
	activeID string
}

// NewOfferRegistry creates an empty offer registry
func NewOfferRegistry() *OfferRegistry {
	return &OfferRegistry{
		entries: make(map[string]registryEntry),
	}
}

// Upsert inserts the offer if it is not already known. Re-inserting an
// existing id is a no-op, as is an offer matching the active trip id.
// It returns true when the registry changed.
func (r *OfferRegistry) Upsert(offer models.TripOffer) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if offer.ID == "" || offer.ID == r.activeID {
		return false
	}
	if _, exists := r.entries[offer.ID]; exists {
		return false
	}

	r.seq++
	r.entries[offer.ID] = registryEntry{offer: offer, seq: r.seq}
	return true
}

// Remove deletes the offer with the given id. It returns true when an
// entry was removed.
func (r *OfferRegistry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; !exists {
		return false
	}
	delete(r.entries, id)
	return true
}

// Get returns the offer with the given id
func (r *OfferRegistry) Get(id string) (models.TripOffer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[id]
	return entry.offer, exists
}

// SetActiveID records the id of the current active trip. The matching entry
// is removed and future upserts with this id are dropped until the guard is
// cleared with an empty id.
func (r *OfferRegistry) SetActiveID(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activeID = id
	if id != "" {
		delete(r.entries, id)
	}
}

// List returns all offers ordered newest CreatedAt first, ties broken by
// insertion order.
func (r *OfferRegistry) List() []models.TripOffer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]registryEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].offer.CreatedAt.Equal(entries[j].offer.CreatedAt) {
			return entries[i].seq < entries[j].seq
		}
		return entries[i].offer.CreatedAt.After(entries[j].offer.CreatedAt)
	})

	offers := make([]models.TripOffer, len(entries))
	for i, entry := range entries {
		offers[i] = entry.offer
	}
	return offers
}

// Clear removes every offer while keeping the active-trip guard
func (r *OfferRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]registryEntry)
}

// Len returns the number of offers currently held
func (r *OfferRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
