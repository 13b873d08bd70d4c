package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicRecordSubmitted is the Watermill topic published when a Record is submitted.
const TopicRecordSubmitted = "record.submitted"

// RecordSubmittedEvent is published after a new Record is stored.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicRecordSubmitted).
type RecordSubmittedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	RecordID   uint64    `json:"record_id"`
	Owner      string    `json:"owner"`
	Title      string    `json:"title"`
	Price      uint64    `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}
