// Package domain contains the core data types for the community garden
// registration service. It has no dependencies on other internal packages
// and is imported by every other one (hours, repo, service, flow, handler).
package domain

// Visitor holds the contact details a person entered on the form.
// Values are stored exactly as given: no trimming, no uniqueness check.
type Visitor struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Form is the raw input of one registration attempt: the five free-text
// fields from the presentation layer.
type Form struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Date  string `json:"date"` // YYYY-MM-DD
	Time  string `json:"time"` // HH:mm, 24-hour
}

// Visitor returns the contact part of the form.
func (f Form) Visitor() Visitor {
	return Visitor{Name: f.Name, Phone: f.Phone, Email: f.Email}
}

// Appointment returns the requested slot part of the form.
func (f Form) Appointment() Appointment {
	return Appointment{Date: f.Date, Time: f.Time}
}
