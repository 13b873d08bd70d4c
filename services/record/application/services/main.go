package services

import (
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/ghuser/promptregistry/pkg/app"
	"github.com/ghuser/promptregistry/pkg/cache"
	"github.com/ghuser/promptregistry/services/record/infrastructure/messaging"
	"github.com/ghuser/promptregistry/services/record/infrastructure/persistence/memory"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Record *RecordService
}

// New wires all record application services with infrastructure from the
// Application container. Each call owns a fresh record store; call it once
// per process.
func New(a *app.Application) (*Services, error) {
	deps := Deps{
		Repo:           memory.NewRecordStore(),
		Logger:         a.Logger,
		TracerProvider: otel.GetTracerProvider(),
		MeterProvider:  otel.GetMeterProvider(),
	}
	if a.EventBus != nil {
		deps.Publisher = messaging.NewRecordEventPublisher(a.EventBus)
	}
	if a.Redis != nil {
		deps.Stats = cache.NewPublisherStatsCache(a.Redis.Client())
	}

	svc, err := NewRecordService(deps)
	if err != nil {
		return nil, fmt.Errorf("record service: %w", err)
	}
	return &Services{Record: svc}, nil
}
