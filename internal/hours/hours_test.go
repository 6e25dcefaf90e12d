package hours_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/community-garden/backend/internal/domain"
	"github.com/pkordes/community-garden/backend/internal/hours"
)

// datesIn returns every date of the given year that falls on one of days.
func datesIn(year int, days ...time.Weekday) []string {
	want := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		want[d] = true
	}
	var out []string
	for d := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
		if want[d.Weekday()] {
			out = append(out, d.Format(domain.DateLayout))
		}
	}
	return out
}

// allTimes returns every HH:mm of a day.
func allTimes() []string {
	out := make([]string, 0, 24*60)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			out = append(out, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return out
}

func TestIsValidSlot_SundayAlwaysClosed(t *testing.T) {
	times := allTimes()
	for _, date := range datesIn(2024, time.Sunday) {
		for _, clock := range times {
			if hours.IsValidSlot(date, clock) {
				t.Fatalf("IsValidSlot(%s, %s) = true, want false on Sunday", date, clock)
			}
		}
	}
}

func TestIsValidSlot_WeekdayBoundaries(t *testing.T) {
	weekdays := datesIn(2024, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
	for _, date := range weekdays {
		assert.True(t, hours.IsValidSlot(date, "08:00"), date)
		assert.True(t, hours.IsValidSlot(date, "20:00"), date)
		// Only the hour is compared, so the whole 20:xx hour is open.
		assert.True(t, hours.IsValidSlot(date, "20:01"), date)
		assert.True(t, hours.IsValidSlot(date, "20:59"), date)
		assert.False(t, hours.IsValidSlot(date, "07:59"), date)
		assert.False(t, hours.IsValidSlot(date, "21:00"), date)
		assert.False(t, hours.IsValidSlot(date, "00:00"), date)
	}
}

func TestIsValidSlot_SaturdayBoundaries(t *testing.T) {
	for _, date := range datesIn(2024, time.Saturday) {
		assert.True(t, hours.IsValidSlot(date, "08:00"), date)
		assert.True(t, hours.IsValidSlot(date, "17:00"), date)
		assert.True(t, hours.IsValidSlot(date, "17:59"), date)
		assert.False(t, hours.IsValidSlot(date, "07:59"), date)
		assert.False(t, hours.IsValidSlot(date, "18:00"), date)
	}
}

func TestIsValidSlot_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
	}{
		{"month and day out of range", "2024-13-40", "09:00"},
		{"hour and minute out of range", "2024-06-10", "25:61"},
		{"hour 24", "2024-06-10", "24:00"},
		{"february 30", "2024-02-30", "09:00"},
		{"non-leap february 29", "2023-02-29", "09:00"},
		{"slashes", "2024/06/10", "09:00"},
		{"single digit month", "2024-6-10", "09:00"},
		{"twelve hour clock", "2024-06-10", "9:00 AM"},
		{"trailing text on date", "2024-06-10x", "09:00"},
		{"date carries the time", "2024-06-10 09:00", ""},
		{"empty", "", ""},
		{"garbage", "tomorrow", "noon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, hours.IsValidSlot(tt.date, tt.clock))
			})
		})
	}
}

func TestIsValidSlot_LeapDay(t *testing.T) {
	// 2024-02-29 is a Thursday.
	assert.True(t, hours.IsValidSlot("2024-02-29", "10:30"))
}

func TestTable_CustomWindow(t *testing.T) {
	table := hours.Table{time.Monday: {Open: 10, Close: 12}}

	assert.True(t, table.Allows("2024-06-10", "10:00"))
	assert.True(t, table.Allows("2024-06-10", "12:45"))
	assert.False(t, table.Allows("2024-06-10", "09:59"))
	// Tuesday is absent from the table, so it is closed.
	assert.False(t, table.Allows("2024-06-11", "10:00"))
}

func TestTable_Describe(t *testing.T) {
	assert.Equal(t, "closed", hours.Default.Describe(time.Sunday))
	assert.Equal(t, "08:00-20:00", hours.Default.Describe(time.Wednesday))
	assert.Equal(t, "08:00-17:00", hours.Default.Describe(time.Saturday))
}
