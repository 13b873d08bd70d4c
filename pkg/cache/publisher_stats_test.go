package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func TestPublisherKeys(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"stats", publisherKey("alice"), "publisher:stats:alice"},
		{"event", eventKey("e1"), "publisher:event:e1"},
		{"owner shaped like a marker", publisherKey("event:e1"), "publisher:stats:event:e1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if publisherKey("event:e1") == eventKey("e1") {
		t.Error("owner key collides with dedup marker")
	}
}

func TestFormatSubmittedAt_SortsInTimeOrder(t *testing.T) {
	base := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	// RFC3339Nano renders these as ...05Z, ...05.1Z and ...05.000000001Z,
	// which do not sort lexically.
	times := []time.Time{
		base,
		base.Add(time.Nanosecond),
		base.Add(100 * time.Millisecond),
		base.Add(time.Second),
	}
	for i := 1; i < len(times); i++ {
		prev, cur := formatSubmittedAt(times[i-1]), formatSubmittedAt(times[i])
		if len(prev) != len(cur) {
			t.Errorf("width changed: %q vs %q", prev, cur)
		}
		if !(prev < cur) {
			t.Errorf("%q should sort before %q", prev, cur)
		}
	}

	local := base.In(time.FixedZone("UTC+2", 2*60*60))
	if got, want := formatSubmittedAt(local), formatSubmittedAt(base); got != want {
		t.Errorf("zone not normalised: %q, want %q", got, want)
	}

	parsed, err := time.Parse(time.RFC3339Nano, formatSubmittedAt(times[1]))
	if err != nil {
		t.Fatalf("stored value does not parse back: %v", err)
	}
	if !parsed.Equal(times[1]) {
		t.Errorf("round trip = %v, want %v", parsed, times[1])
	}
}

func TestParsePublisherStats(t *testing.T) {
	valid := map[string]string{
		"records":            "3",
		"last_record_id":     "18446744073709551615",
		"first_submitted_at": "2024-01-02T03:04:05Z",
		"last_submitted_at":  "2024-01-02T03:04:06.5Z",
	}

	t.Run("valid", func(t *testing.T) {
		got, err := parsePublisherStats("alice", valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Owner != "alice" || got.Records != 3 || got.LastRecordID != 18446744073709551615 {
			t.Errorf("unexpected stats: %+v", got)
		}
		if !got.LastSubmittedAt.After(got.FirstSubmittedAt) {
			t.Errorf("last_submitted_at %v not after first %v", got.LastSubmittedAt, got.FirstSubmittedAt)
		}
	})

	for _, field := range []string{"records", "last_record_id", "first_submitted_at", "last_submitted_at"} {
		t.Run("corrupt "+field, func(t *testing.T) {
			vals := make(map[string]string, len(valid))
			for k, v := range valid {
				vals[k] = v
			}
			vals[field] = "garbage"
			if _, err := parsePublisherStats("alice", vals); err == nil {
				t.Fatalf("expected error for corrupt %s", field)
			}
		})
	}
}

// Integration tests, skipped unless REDIS_URL is set.
func TestPublisherStatsCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ctx := context.Background()
	stats := NewPublisherStatsCache(rc.Client())
	owner := "test-owner-" + uuid.NewString()
	t.Cleanup(func() { rc.Client().Del(ctx, publisherKey(owner)) })

	t.Run("Get_Missing", func(t *testing.T) {
		_, err := stats.Get(ctx, owner)
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil, got %v", err)
		}
	})

	base := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	first := Submission{EventID: uuid.NewString(), Owner: owner, RecordID: 7, SubmittedAt: base}
	second := Submission{EventID: uuid.NewString(), Owner: owner, RecordID: 12, SubmittedAt: base.Add(time.Minute)}
	stale := Submission{EventID: uuid.NewString(), Owner: owner, RecordID: 30, SubmittedAt: base.Add(30 * time.Second)}
	t.Cleanup(func() {
		rc.Client().Del(ctx, eventKey(first.EventID), eventKey(second.EventID), eventKey(stale.EventID))
	})

	t.Run("Apply_And_Deduplicate", func(t *testing.T) {
		for i, s := range []Submission{first, second, first, stale} {
			applied, err := stats.Apply(ctx, s)
			if err != nil {
				t.Fatalf("Apply #%d: %v", i, err)
			}
			if wantApplied := i != 2; applied != wantApplied {
				t.Errorf("Apply #%d applied = %v, want %v", i, applied, wantApplied)
			}
		}

		got, err := stats.Get(ctx, owner)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Records != 3 {
			t.Errorf("Records = %d, want 3", got.Records)
		}
		if got.LastRecordID != 12 {
			t.Errorf("LastRecordID = %d, want 12 (older submission must not replace it)", got.LastRecordID)
		}
		if !got.FirstSubmittedAt.Equal(first.SubmittedAt) {
			t.Errorf("FirstSubmittedAt = %v, want %v", got.FirstSubmittedAt, first.SubmittedAt)
		}
		if !got.LastSubmittedAt.Equal(second.SubmittedAt) {
			t.Errorf("LastSubmittedAt = %v, want %v", got.LastSubmittedAt, second.SubmittedAt)
		}
	})
}

// Ids restart at zero when the api restarts; the read model must still move
// forward with submission time.
func TestPublisherStatsCacheIntegration_IDReset(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ctx := context.Background()
	stats := NewPublisherStatsCache(rc.Client())
	owner := "test-owner-" + uuid.NewString()

	base := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	// The later submission is within the same second and carries a
	// sub-second fraction RFC3339Nano would shorten.
	before := Submission{EventID: uuid.NewString(), Owner: owner, RecordID: 5, SubmittedAt: base}
	after := Submission{EventID: uuid.NewString(), Owner: owner, RecordID: 0, SubmittedAt: base.Add(100 * time.Millisecond)}
	t.Cleanup(func() {
		rc.Client().Del(ctx, publisherKey(owner), eventKey(before.EventID), eventKey(after.EventID))
	})

	for _, s := range []Submission{before, after} {
		if _, err := stats.Apply(ctx, s); err != nil {
			t.Fatalf("Apply id %d: %v", s.RecordID, err)
		}
	}

	got, err := stats.Get(ctx, owner)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Records != 2 {
		t.Errorf("Records = %d, want 2", got.Records)
	}
	if got.LastRecordID != 0 {
		t.Errorf("LastRecordID = %d, want 0", got.LastRecordID)
	}
	if !got.LastSubmittedAt.Equal(after.SubmittedAt) {
		t.Errorf("LastSubmittedAt = %v, want %v", got.LastSubmittedAt, after.SubmittedAt)
	}
	if !got.FirstSubmittedAt.Equal(before.SubmittedAt) {
		t.Errorf("FirstSubmittedAt = %v, want %v", got.FirstSubmittedAt, before.SubmittedAt)
	}
}
