// Package store holds the in-memory list of saved properties managed by the
// presentation layer. The calculators never touch it; it exists so the web UI
// can track properties across requests within a single process.
package store

import (
	"fmt"
	"sync"
	"time"
)

// SavedProperty is one tracked property descriptor.
type SavedProperty struct {
	Name      string    `json:"name"`
	Beds      int       `json:"beds,omitempty"`
	Baths     int       `json:"baths,omitempty"`
	Sqft      int       `json:"sqft,omitempty"`
	YearBuilt int       `json:"yearBuilt,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	SavedAt   time.Time `json:"savedAt"`
}

// PropertyStore is an append/delete-by-index list of saved properties. It is
// safe for concurrent use by HTTP handlers.
type PropertyStore struct {
	mu         sync.Mutex
	properties []SavedProperty
	now        func() time.Time
}

// NewPropertyStore creates an empty store.
func NewPropertyStore() *PropertyStore {
	return &PropertyStore{now: time.Now}
}

// Append stamps the property with the current time, adds it to the list, and
// returns the stored copy.
func (s *PropertyStore) Append(property SavedProperty) SavedProperty {
	s.mu.Lock()
	defer s.mu.Unlock()

	property.SavedAt = s.now()
	s.properties = append(s.properties, property)
	return property
}

// Delete removes the property at the given index.
func (s *PropertyStore) Delete(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.properties) {
		return fmt.Errorf("property index %d out of range [0, %d)", index, len(s.properties))
	}
	s.properties = append(s.properties[:index], s.properties[index+1:]...)
	return nil
}

// List returns a snapshot of the saved properties in insertion order.
func (s *PropertyStore) List() []SavedProperty {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SavedProperty(nil), s.properties...)
}

// Len returns the number of saved properties.
func (s *PropertyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.properties)
}
