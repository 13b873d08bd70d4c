package api

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/promptregistry/pkg/app"
	"github.com/ghuser/promptregistry/pkg/auth"
	"github.com/ghuser/promptregistry/services/record/application/handlers"
	appsvcs "github.com/ghuser/promptregistry/services/record/application/services"
)

// RecordRoutes registers record and publisher endpoints on the provided chi
// router. Listing and stats are public; submitting requires a session.
func RecordRoutes(r chi.Router, a *app.Application) error {
	svcs, err := appsvcs.New(a)
	if err != nil {
		return fmt.Errorf("record routes: %w", err)
	}

	r.Route("/records", func(r chi.Router) {
		r.Get("/", handlers.NewListRecordsHandler(svcs).Execute)
		r.With(auth.RequireAuth(a.SessionStore, a.Logger)).
			Post("/", handlers.NewPostRecordHandler(svcs).Execute)
	})
	r.Get("/publishers/{owner}/stats", handlers.NewGetPublisherStatsHandler(svcs).Execute)
	return nil
}
