package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/community-garden/backend/internal/domain"
	"github.com/pkordes/community-garden/backend/internal/service"
)

// CreateRegistrationRequest is the body of POST /registrations.
// Values are kept exactly as sent; date and time are validated by the
// service against the operating-hours table.
type CreateRegistrationRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// RegistrationResponse is the JSON representation of one registration.
type RegistrationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Appointment string    `json:"appointment"`
	Logged      bool      `json:"logged"`
	CreatedAt   time.Time `json:"created_at"`
}

// RosterResponse is the body of GET /registrations.
type RosterResponse struct {
	Users         []domain.Visitor       `json:"users"`
	Appointments  []string               `json:"appointments"`
	Registrations []RegistrationResponse `json:"registrations"`
}

// CreateRegistration handles POST /registrations.
func (s *Server) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	var body CreateRegistrationRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	reg, err := s.registrations.Register(r.Context(), domain.Form{
		Name:  body.Name,
		Phone: body.Phone,
		Email: body.Email,
		Date:  body.Date,
		Time:  body.Time,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if s.echo != nil {
		if err := service.WriteReport(s.echo, s.registrations.Roster(r.Context())); err != nil {
			s.logger.WarnContext(r.Context(), "roster echo failed", "error", err)
		}
	}

	w.Header().Set("Location", "/registrations/"+reg.ID.String())
	writeJSON(w, http.StatusCreated, registrationToResponse(reg))
}

// ListRegistrations handles GET /registrations.
// The users and appointments lists are index-aligned.
func (s *Server) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	roster := s.registrations.Roster(r.Context())
	regs := s.registrations.Registrations(r.Context())

	out := RosterResponse{
		Users:         roster.Users,
		Appointments:  roster.Appointments,
		Registrations: make([]RegistrationResponse, 0, len(regs)),
	}
	for _, reg := range regs {
		out.Registrations = append(out.Registrations, registrationToResponse(reg))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetRegistration handles GET /registrations/{id}.
func (s *Server) GetRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", "id must be a UUID"))
		return
	}

	reg, err := s.registrations.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, registrationToResponse(reg))
}

// registrationToResponse maps a domain.Registration to its JSON shape.
func registrationToResponse(reg domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:          reg.ID,
		Name:        reg.Visitor.Name,
		Phone:       reg.Visitor.Phone,
		Email:       reg.Visitor.Email,
		Date:        reg.Appointment.Date,
		Time:        reg.Appointment.Time,
		Appointment: reg.Appointment.String(),
		Logged:      reg.Logged,
		CreatedAt:   reg.CreatedAt,
	}
}
