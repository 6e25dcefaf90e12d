// Package hours holds the garden's weekly operating-hours table and the
// predicate that decides whether a requested slot falls inside it.
package hours

import (
	"fmt"
	"time"

	"github.com/pkordes/community-garden/backend/internal/domain"
)

// Window is an open period within one day, as whole hours.
// Both bounds are inclusive and compared against the hour component only:
// with Close=20, "20:59" is inside the window.
type Window struct {
	Open  int
	Close int
}

// Contains reports whether hour lies in [Open, Close].
func (w Window) Contains(hour int) bool {
	return hour >= w.Open && hour <= w.Close
}

// Table maps each weekday to its open window.
// A missing or nil entry means the garden is closed all day.
type Table map[time.Weekday]*Window

// Default is the fixed garden schedule: closed on Sunday, 08–20 on weekdays,
// 08–17 on Saturday.
var Default = Table{
	time.Monday:    {Open: 8, Close: 20},
	time.Tuesday:   {Open: 8, Close: 20},
	time.Wednesday: {Open: 8, Close: 20},
	time.Thursday:  {Open: 8, Close: 20},
	time.Friday:    {Open: 8, Close: 20},
	time.Saturday:  {Open: 8, Close: 17},
}

// Allows reports whether the slot given as a YYYY-MM-DD date and an HH:mm
// time is open according to t.
//
// Parsing is strict: out-of-range components (month 13, Feb 30, hour 25,
// minute 61) and trailing text make the slot invalid rather than rolling
// over. Any parse failure yields false.
func (t Table) Allows(date, clock string) bool {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return false
	}
	tod, err := time.Parse(domain.TimeLayout, clock)
	if err != nil {
		return false
	}
	w := t[day.Weekday()]
	if w == nil {
		return false
	}
	return w.Contains(tod.Hour())
}

// Describe renders the window for day, e.g. "08:00-20:00" or "closed".
func (t Table) Describe(day time.Weekday) string {
	w := t[day]
	if w == nil {
		return "closed"
	}
	return fmt.Sprintf("%02d:00-%02d:00", w.Open, w.Close)
}

// IsValidSlot checks a slot against the Default table.
func IsValidSlot(date, clock string) bool {
	return Default.Allows(date, clock)
}
