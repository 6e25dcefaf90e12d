// Package service contains the business logic of the registration service.
// Services validate input, own the in-memory registration state, and
// orchestrate writes to the appointment log. No file I/O lives here; the
// log is reached through the repo.AppointmentLog interface.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/community-garden/backend/internal/domain"
	"github.com/pkordes/community-garden/backend/internal/hours"
	"github.com/pkordes/community-garden/backend/internal/metrics"
	"github.com/pkordes/community-garden/backend/internal/repo"
)

// Option configures a RegistrationService.
type Option func(*RegistrationService)

// WithHours replaces the operating-hours table. Intended for tests; the
// production table is hours.Default.
func WithHours(t hours.Table) Option {
	return func(s *RegistrationService) { s.hours = t }
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *RegistrationService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics sink. Nil disables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *RegistrationService) { s.metrics = m }
}

// WithStrictLog selects the commit policy.
//
// Lenient (false, the default): the registration is committed in memory
// first; a failed log write is logged and reported through
// Registration.Logged, but the call succeeds.
//
// Strict (true): the log block is written first and the in-memory commit
// happens only if it succeeded; a failed write returns domain.ErrLogWrite.
func WithStrictLog(strict bool) Option {
	return func(s *RegistrationService) { s.strict = strict }
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *RegistrationService) { s.now = now }
}

// RegistrationService owns the registration state for the lifetime of the
// process: the users and appointments lists, which grow in lockstep, and the
// full Registration records behind them.
type RegistrationService struct {
	log     repo.AppointmentLog
	hours   hours.Table
	logger  *slog.Logger
	metrics *metrics.Metrics
	strict  bool
	now     func() time.Time

	// mu serializes Register so that list order always matches the order of
	// blocks in the log file.
	mu            sync.Mutex
	users         []domain.Visitor
	appointments  []string
	registrations []domain.Registration
}

// NewRegistrationService constructs a RegistrationService that writes
// accepted registrations to log.
func NewRegistrationService(log repo.AppointmentLog, opts ...Option) *RegistrationService {
	s := &RegistrationService{
		log:    log,
		hours:  hours.Default,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the requested slot and, if it is open, records the
// visitor and appointment in memory and in the appointment log.
//
// Returns domain.ErrSlotRejected (which wraps domain.ErrValidation) when the
// slot is malformed or outside operating hours; nothing is recorded then.
// Returns domain.ErrLogWrite only under the strict commit policy.
func (s *RegistrationService) Register(ctx context.Context, form domain.Form) (domain.Registration, error) {
	if !s.hours.Allows(form.Date, form.Time) {
		s.metrics.RecordRegistration(metrics.OutcomeRejected)
		s.logger.InfoContext(ctx, "registration rejected", "date", form.Date, "time", form.Time)
		return domain.Registration{}, fmt.Errorf("service.RegistrationService.Register: %w: %q at %q is outside operating hours",
			domain.ErrSlotRejected, form.Date, form.Time)
	}

	reg := domain.Registration{
		ID:          uuid.New(),
		Visitor:     form.Visitor(),
		Appointment: form.Appointment(),
		CreatedAt:   s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.strict {
		if err := s.log.Append(ctx, reg.Visitor, reg.Appointment); err != nil {
			s.logWriteFailed(ctx, reg, err)
			s.metrics.RecordRegistration(metrics.OutcomeFailed)
			return domain.Registration{}, fmt.Errorf("service.RegistrationService.Register: %w: %w", domain.ErrLogWrite, err)
		}
		reg.Logged = true
		s.commit(reg)
	} else {
		s.commit(reg)
		if err := s.log.Append(ctx, reg.Visitor, reg.Appointment); err != nil {
			s.logWriteFailed(ctx, reg, err)
		} else {
			reg.Logged = true
			s.registrations[len(s.registrations)-1].Logged = true
		}
	}

	s.metrics.RecordRegistration(metrics.OutcomeAccepted)
	s.logger.InfoContext(ctx, "registration accepted",
		"registration_id", reg.ID,
		"appointment", reg.Appointment.String(),
		"logged", reg.Logged,
	)
	return reg, nil
}

// commit appends reg to all three in-memory lists. Callers hold s.mu.
func (s *RegistrationService) commit(reg domain.Registration) {
	s.users = append(s.users, reg.Visitor)
	s.appointments = append(s.appointments, reg.Appointment.String())
	s.registrations = append(s.registrations, reg)
}

func (s *RegistrationService) logWriteFailed(ctx context.Context, reg domain.Registration, err error) {
	s.metrics.RecordLogWriteFailure()
	s.logger.ErrorContext(ctx, "appointment log write failed",
		"registration_id", reg.ID,
		"strict", s.strict,
		"error", err,
	)
}

// Roster returns copies of the users and appointments lists in insertion
// order. Both slices are non-nil and always of equal length.
func (s *RegistrationService) Roster(_ context.Context) domain.Roster {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]domain.Visitor, len(s.users))
	copy(users, s.users)
	appts := make([]string, len(s.appointments))
	copy(appts, s.appointments)
	return domain.Roster{Users: users, Appointments: appts}
}

// Registrations returns all accepted registrations in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *RegistrationService) Registrations(_ context.Context) []domain.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Registration, len(s.registrations))
	copy(out, s.registrations)
	return out
}

// GetByID returns a single registration.
// Returns domain.ErrNotFound if no registration has that ID.
func (s *RegistrationService) GetByID(_ context.Context, id uuid.UUID) (domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.registrations {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Registration{}, fmt.Errorf("service.RegistrationService.GetByID: %w", domain.ErrNotFound)
}

// LogEntries reads the appointment log back from durable storage.
func (s *RegistrationService) LogEntries(ctx context.Context) ([]domain.LogEntry, error) {
	entries, err := s.log.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RegistrationService.LogEntries: %w", err)
	}
	return entries, nil
}

// Hours returns the operating-hours table the service validates against.
func (s *RegistrationService) Hours() hours.Table {
	return s.hours
}
