package repositories

import (
	"github.com/ghuser/promptregistry/services/record/domain/models"
)

// RecordRepository is the storage interface for the Record aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Both operations are total: they never block on I/O and never fail, so
// neither takes a context nor returns an error.
type RecordRepository interface {
	// Submit allocates the next id, stores a Record built from d and owner,
	// and returns a copy of it. Allocation, insert and counter advance are
	// a single atomic step.
	Submit(d models.Draft, owner string) models.Record

	// List returns one copy of every stored Record, ordered by ascending id.
	List() []models.Record

	// Len reports how many records are stored.
	Len() int
}
