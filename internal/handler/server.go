// Package handler implements the HTTP surface of the registration service.
// All handlers are methods on Server. Methods are split into
// resource-specific files (health.go, registration.go, donation.go, ...) but
// share the same Server struct so they can reach its dependencies.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/community-garden/backend/internal/domain"
	"github.com/pkordes/community-garden/backend/internal/hours"
)

// RegistrationServicer defines the registration operations the handlers
// depend on. Defining the interface here, in the consumer package, lets
// handler tests inject a mock without touching the file system.
type RegistrationServicer interface {
	Register(ctx context.Context, form domain.Form) (domain.Registration, error)
	Roster(ctx context.Context) domain.Roster
	Registrations(ctx context.Context) []domain.Registration
	GetByID(ctx context.Context, id uuid.UUID) (domain.Registration, error)
	LogEntries(ctx context.Context) ([]domain.LogEntry, error)
	Hours() hours.Table
}

// DonationServicer records one donation and returns the acknowledgement.
type DonationServicer interface {
	RecordDonation(ctx context.Context, d domain.Donation) (string, error)
}

// Server holds the dependencies of every handler.
type Server struct {
	registrations RegistrationServicer
	donations     DonationServicer
	logger        *slog.Logger

	// echo receives the cumulative roster listing after every successful
	// registration; nil disables it.
	echo io.Writer
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default(); a nil echo disables the roster
// listing.
func NewServer(registrations RegistrationServicer, donations DonationServicer, logger *slog.Logger, echo io.Writer) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{registrations: registrations, donations: donations, logger: logger, echo: echo}
}

// Routes returns a chi router with every API endpoint mounted.
// Cross-cutting middleware (request IDs, logging, CORS, body limits) is
// applied by the caller, as main.go does.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/hours", s.GetHours)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/registrations", func(r chi.Router) {
		r.Post("/", s.CreateRegistration)
		r.Get("/", s.ListRegistrations)
		r.Get("/export", s.ExportRegistrations)
		r.Get("/{id}", s.GetRegistration)
	})

	r.Post("/donations", s.CreateDonation)
	r.Get("/appointments/log", s.GetAppointmentLog)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})

	return r
}
