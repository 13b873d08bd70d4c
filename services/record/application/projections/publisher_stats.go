// Package projections folds record domain events into read models.
package projections

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/promptregistry/pkg/app"
	"github.com/ghuser/promptregistry/pkg/cache"
	"github.com/ghuser/promptregistry/pkg/logger"
	domainevents "github.com/ghuser/promptregistry/services/record/domain/events"
	"github.com/ghuser/promptregistry/services/record/infrastructure/messaging"
)

// StatsWriter applies one submission to the publisher stats read model and
// reports whether it was new.
type StatsWriter interface {
	Apply(ctx context.Context, s cache.Submission) (bool, error)
}

// Register subscribes the publisher stats projection to record.submitted on
// a.EventBus. Subscriber errors are drained into the log until ctx ends.
func Register(ctx context.Context, a *app.Application) error {
	handler := HandleRecordSubmitted(cache.NewPublisherStatsCache(a.Redis.Client()), a.Logger)
	errCh, err := a.EventBus.Subscribe(ctx, domainevents.TopicRecordSubmitted, handler)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", domainevents.TopicRecordSubmitted, err)
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", domainevents.TopicRecordSubmitted,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{domainevents.TopicRecordSubmitted})
	return nil
}

// HandleRecordSubmitted returns a handler for record.submitted events.
// Redelivered events are recognised by event id and applied once.
// A malformed payload is logged and acknowledged: retrying cannot fix it.
func HandleRecordSubmitted(stats StatsWriter, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := messaging.DecodeSubmitted(msg)
		if err != nil {
			log.ErrorContext(ctx, "dropping undecodable event", "message_uuid", msg.UUID, "error", err)
			return nil
		}

		applied, err := stats.Apply(ctx, cache.Submission{
			EventID:     evt.EventID.String(),
			Owner:       evt.Owner,
			RecordID:    evt.RecordID,
			SubmittedAt: evt.OccurredAt,
		})
		if err != nil {
			return fmt.Errorf("apply record %d: %w", evt.RecordID, err)
		}
		if !applied {
			log.DebugContext(ctx, "duplicate record.submitted ignored",
				"event_id", evt.EventID, "record_id", evt.RecordID)
			return nil
		}

		log.InfoContext(ctx, "publisher stats updated",
			"owner", evt.Owner, "record_id", evt.RecordID)
		return nil
	}
}
