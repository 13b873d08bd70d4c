package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/promptregistry/pkg/events"
	domainevents "github.com/ghuser/promptregistry/services/record/domain/events"
	"github.com/ghuser/promptregistry/services/record/domain/models"
)

const eventVersion = 1

// RecordEventPublisher publishes record domain events on the EventBus.
type RecordEventPublisher struct {
	bus *events.EventBus
}

// NewRecordEventPublisher returns a RecordEventPublisher backed by bus.
func NewRecordEventPublisher(bus *events.EventBus) *RecordEventPublisher {
	return &RecordEventPublisher{bus: bus}
}

// PublishSubmitted publishes a RecordSubmittedEvent for rec.
func (p *RecordEventPublisher) PublishSubmitted(ctx context.Context, rec models.Record, occurredAt time.Time) error {
	event := domainevents.RecordSubmittedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		RecordID:   rec.ID,
		Owner:      rec.Owner,
		Title:      rec.Title,
		Price:      rec.Price,
		OccurredAt: occurredAt.UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", strconv.Itoa(eventVersion))
	return p.bus.Publish(ctx, domainevents.TopicRecordSubmitted, msg)
}

// DecodeSubmitted parses a record.submitted message payload.
func DecodeSubmitted(msg *message.Message) (domainevents.RecordSubmittedEvent, error) {
	var evt domainevents.RecordSubmittedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return evt, fmt.Errorf("decode %s: %w", domainevents.TopicRecordSubmitted, err)
	}
	return evt, nil
}
