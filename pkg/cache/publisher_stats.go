package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	publisherStatsPrefix = "publisher:stats:"
	publisherEventPrefix = "publisher:event:"

	// ProcessedEventTTL bounds how long an applied event id is remembered for
	// deduplication of redeliveries.
	ProcessedEventTTL = 7 * 24 * time.Hour

	// submittedAtLayout is fixed width so stored timestamps compare
	// lexically in time order. RFC3339Nano trims trailing zeros and does not.
	submittedAtLayout = "2006-01-02T15:04:05.000000000Z"
)

// applySubmission folds one submission into a publisher hash exactly once.
//
//	KEYS[1] processed-event marker, KEYS[2] publisher hash
//	ARGV[1] marker TTL seconds, ARGV[2] record id, ARGV[3] submitted-at (submittedAtLayout)
//
// last_* follows the latest submission time, not the record id: ids restart
// at zero with the process and are not comparable across replicas.
var applySubmission = redis.NewScript(`
if not redis.call('SET', KEYS[1], '1', 'NX', 'EX', ARGV[1]) then
  return 0
end
redis.call('HINCRBY', KEYS[2], 'records', 1)
local first = redis.call('HGET', KEYS[2], 'first_submitted_at')
if (not first) or ARGV[3] < first then
  redis.call('HSET', KEYS[2], 'first_submitted_at', ARGV[3])
end
local last = redis.call('HGET', KEYS[2], 'last_submitted_at')
if (not last) or ARGV[3] > last then
  redis.call('HSET', KEYS[2], 'last_record_id', ARGV[2], 'last_submitted_at', ARGV[3])
end
return 1
`)

// PublisherStats is the per-owner read model derived from record.submitted
// events. It is rebuilt from events and never consulted by the record store.
type PublisherStats struct {
	Owner            string    `json:"owner"`
	Records          int64     `json:"records"`
	LastRecordID     uint64    `json:"last_record_id"`
	FirstSubmittedAt time.Time `json:"first_submitted_at"`
	LastSubmittedAt  time.Time `json:"last_submitted_at"`
}

// Submission is one record.submitted event as seen by the read model.
type Submission struct {
	EventID     string
	Owner       string
	RecordID    uint64
	SubmittedAt time.Time
}

// PublisherStatsCache maintains PublisherStats as Redis hashes.
// Key format: "publisher:stats:{owner}"; dedup markers: "publisher:event:{eventID}".
type PublisherStatsCache struct {
	client redis.Cmdable
}

// NewPublisherStatsCache creates a PublisherStatsCache on top of client,
// usually RedisClient.Client().
func NewPublisherStatsCache(client redis.Cmdable) *PublisherStatsCache {
	return &PublisherStatsCache{client: client}
}

// Apply folds s into its owner's stats. It reports false without changing
// anything when the event id was already applied.
func (c *PublisherStatsCache) Apply(ctx context.Context, s Submission) (bool, error) {
	res, err := applySubmission.Run(ctx, c.client,
		[]string{eventKey(s.EventID), publisherKey(s.Owner)},
		int64(ProcessedEventTTL/time.Second),
		strconv.FormatUint(s.RecordID, 10),
		formatSubmittedAt(s.SubmittedAt),
	).Int()
	if err != nil {
		return false, fmt.Errorf("cache apply submission: %w", err)
	}
	return res == 1, nil
}

// Get returns the stats for owner.
// Returns redis.Nil when the owner has no stats yet.
func (c *PublisherStatsCache) Get(ctx context.Context, owner string) (*PublisherStats, error) {
	vals, err := c.client.HGetAll(ctx, publisherKey(owner)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}
	return parsePublisherStats(owner, vals)
}

func parsePublisherStats(owner string, vals map[string]string) (*PublisherStats, error) {
	records, err := strconv.ParseInt(vals["records"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse records: %w", err)
	}
	lastID, err := strconv.ParseUint(vals["last_record_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse last_record_id: %w", err)
	}
	first, err := time.Parse(time.RFC3339Nano, vals["first_submitted_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse first_submitted_at: %w", err)
	}
	last, err := time.Parse(time.RFC3339Nano, vals["last_submitted_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse last_submitted_at: %w", err)
	}
	return &PublisherStats{
		Owner:            owner,
		Records:          records,
		LastRecordID:     lastID,
		FirstSubmittedAt: first,
		LastSubmittedAt:  last,
	}, nil
}

func formatSubmittedAt(t time.Time) string {
	return t.UTC().Format(submittedAtLayout)
}

func publisherKey(owner string) string {
	return publisherStatsPrefix + owner
}

func eventKey(eventID string) string {
	return publisherEventPrefix + eventID
}
