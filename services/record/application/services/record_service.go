package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	pkgcache "github.com/ghuser/promptregistry/pkg/cache"
	"github.com/ghuser/promptregistry/pkg/logger"
	recorddomain "github.com/ghuser/promptregistry/services/record/domain"
	"github.com/ghuser/promptregistry/services/record/domain/models"
	"github.com/ghuser/promptregistry/services/record/domain/repositories"
)

const instrumentationName = "github.com/ghuser/promptregistry/services/record"

var errStatsUnavailable = errors.New("publisher stats unavailable")

// SubmittedPublisher announces stored records to other processes.
type SubmittedPublisher interface {
	PublishSubmitted(ctx context.Context, rec models.Record, occurredAt time.Time) error
}

// PublisherStatsReader reads the per-owner read model built by the worker.
type PublisherStatsReader interface {
	Get(ctx context.Context, owner string) (*pkgcache.PublisherStats, error)
}

// Deps are the collaborators of a RecordService. Publisher and Stats may be
// nil: without a publisher no events are emitted, without a stats reader
// PublisherStats fails.
type Deps struct {
	Repo           repositories.RecordRepository
	Publisher      SubmittedPublisher
	Stats          PublisherStatsReader
	Logger         logger.Logger
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// RecordService orchestrates submission and listing of Records.
// The store is the source of truth; events and metrics are emitted after the
// store call returns and never change its outcome.
type RecordService struct {
	repo      repositories.RecordRepository
	publisher SubmittedPublisher
	stats     PublisherStatsReader
	log       logger.Logger
	tracer    trace.Tracer
	submitted metric.Int64Counter
	failures  metric.Int64Counter
	now       func() time.Time
}

// NewRecordService returns a RecordService wired with deps and registers its
// instruments: records.submitted, records.publish_failures and the
// records.stored gauge.
func NewRecordService(deps Deps) (*RecordService, error) {
	meter := deps.MeterProvider.Meter(instrumentationName)

	submitted, err := meter.Int64Counter("records.submitted",
		metric.WithDescription("Records accepted by the store"))
	if err != nil {
		return nil, fmt.Errorf("records.submitted counter: %w", err)
	}
	failures, err := meter.Int64Counter("records.publish_failures",
		metric.WithDescription("record.submitted events that could not be published"))
	if err != nil {
		return nil, fmt.Errorf("records.publish_failures counter: %w", err)
	}
	repo := deps.Repo
	if _, err := meter.Int64ObservableGauge("records.stored",
		metric.WithDescription("Records currently held by the store"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(repo.Len()))
			return nil
		}),
	); err != nil {
		return nil, fmt.Errorf("records.stored gauge: %w", err)
	}

	return &RecordService{
		repo:      repo,
		publisher: deps.Publisher,
		stats:     deps.Stats,
		log:       deps.Logger,
		tracer:    deps.TracerProvider.Tracer(instrumentationName),
		submitted: submitted,
		failures:  failures,
		now:       time.Now,
	}, nil
}

// Submit stores a Record built from d and owned by owner and returns it.
// It always succeeds: a failed event publish is logged and counted only.
func (s *RecordService) Submit(ctx context.Context, d models.Draft, owner string) models.Record {
	ctx, span := s.tracer.Start(ctx, "RecordService.Submit")
	defer span.End()

	rec := s.repo.Submit(d, owner)
	span.SetAttributes(attribute.String("record.id", strconv.FormatUint(rec.ID, 10)))
	s.submitted.Add(ctx, 1)

	if s.publisher != nil {
		if err := s.publisher.PublishSubmitted(ctx, rec, s.now()); err != nil {
			span.RecordError(err)
			s.failures.Add(ctx, 1)
			s.log.ErrorContext(ctx, "publish record.submitted failed",
				"record_id", rec.ID, "error", err)
		}
	}

	s.log.InfoContext(ctx, "record submitted", "record_id", rec.ID)
	return rec
}

// List returns every stored Record ordered by ascending id.
func (s *RecordService) List(ctx context.Context) []models.Record {
	ctx, span := s.tracer.Start(ctx, "RecordService.List")
	defer span.End()

	records := s.repo.List()
	span.SetAttributes(attribute.Int("records.count", len(records)))
	s.log.DebugContext(ctx, "records listed", "count", len(records))
	return records
}

// PublisherStats returns the read model for owner.
// Returns ErrPublisherNotFound when the worker has not seen the owner yet.
func (s *RecordService) PublisherStats(ctx context.Context, owner string) (*pkgcache.PublisherStats, error) {
	ctx, span := s.tracer.Start(ctx, "RecordService.PublisherStats")
	defer span.End()

	if s.stats == nil {
		return nil, errStatsUnavailable
	}
	stats, err := s.stats.Get(ctx, owner)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, recorddomain.ErrPublisherNotFound
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("publisher stats: %w", err)
	}
	return stats, nil
}
