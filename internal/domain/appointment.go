package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout and TimeLayout are the accepted input formats for a slot.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment is a requested slot, kept as the validated raw strings.
type Appointment struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// String returns the date and time joined by a single space, the form in
// which appointments are listed in the roster.
func (a Appointment) String() string {
	return a.Date + " " + a.Time
}

// Registration is one accepted Visitor/Appointment pair.
// Logged is false when the appointment log write failed under the lenient
// commit policy; the registration is still held in memory in that case.
type Registration struct {
	ID          uuid.UUID
	Visitor     Visitor
	Appointment Appointment
	Logged      bool
	CreatedAt   time.Time
}

// Roster is the cumulative listing of all registrations so far.
// Users and Appointments always have the same length and are correlated
// by position.
type Roster struct {
	Users        []Visitor `json:"users"`
	Appointments []string  `json:"appointments"`
}

// LogEntry is one block read back from the appointment log file.
// Appointment holds the text after "Appointment: " verbatim
// (e.g. "2024-06-10 at 09:00").
type LogEntry struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Appointment string `json:"appointment"`
}
