// Package favorites implements the storefront's favorites set: product IDs a
// visitor has hearted, persisted per session.
package favorites

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Set is the in-memory favorites state for one session. Insertion order is
// irrelevant; membership is all that matters. It is not safe for concurrent
// use; the owning service serializes access.
type Set struct {
	ids map[uuid.UUID]struct{}
}

// NewSet creates an empty favorites set.
func NewSet() *Set {
	return &Set{ids: make(map[uuid.UUID]struct{})}
}

// DecodeSet reconstructs a set from a persisted snapshot (a flat JSON array
// of product IDs).
func DecodeSet(data []byte) (*Set, error) {
	var ids []uuid.UUID
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode favorites snapshot: %w", err)
	}
	set := NewSet()
	for _, id := range ids {
		set.ids[id] = struct{}{}
	}
	return set, nil
}

// Encode serializes the set's current contents for persistence.
func (s *Set) Encode() ([]byte, error) {
	ids := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to encode favorites snapshot: %w", err)
	}
	return data, nil
}

// Toggle adds the product if absent and removes it if present.
// Returns true if the product is a favorite after the call.
func (s *Set) Toggle(productID uuid.UUID) bool {
	if _, ok := s.ids[productID]; ok {
		delete(s.ids, productID)
		return false
	}
	s.ids[productID] = struct{}{}
	return true
}

// Remove deletes the product from the set. No-op if absent.
func (s *Set) Remove(productID uuid.UUID) {
	delete(s.ids, productID)
}

// Contains reports whether the product is a favorite.
func (s *Set) Contains(productID uuid.UUID) bool {
	_, ok := s.ids[productID]
	return ok
}

// Count returns the number of favorite products.
func (s *Set) Count() int {
	return len(s.ids)
}

// IDs returns the favorite product IDs in unspecified order.
func (s *Set) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	return ids
}
