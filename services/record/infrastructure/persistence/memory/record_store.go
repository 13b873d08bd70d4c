// Package memory holds the in-process record store. State lives for the
// lifetime of the process only; nothing is written to disk.
package memory

import (
	"cmp"
	"slices"
	"sync"

	"github.com/ghuser/promptregistry/services/record/domain/models"
	"github.com/ghuser/promptregistry/services/record/domain/repositories"
)

var _ repositories.RecordRepository = (*RecordStore)(nil)

// RecordStore implements repositories.RecordRepository over a map guarded by
// a single RWMutex. Submit holds the write lock across id allocation, insert
// and counter advance; List holds the read lock while copying.
type RecordStore struct {
	mu      sync.RWMutex
	records map[uint64]models.Record
	nextID  uint64
}

// NewRecordStore returns an empty store whose first record gets id 0.
func NewRecordStore() *RecordStore {
	return &RecordStore{records: make(map[uint64]models.Record)}
}

// Submit stores a new Record for owner and returns it by value.
func (s *RecordStore) Submit(d models.Draft, owner string) models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := models.NewRecord(s.nextID, d, owner)
	s.records[r.ID] = r
	s.nextID++
	return r
}

// List returns a snapshot of every Record sorted by id. Since ids are
// allocated monotonically this is also submission order.
func (s *RecordStore) List() []models.Record {
	s.mu.RLock()
	out := make([]models.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.Record) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Len reports how many records are stored.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
