package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for times of day.
	TimeLayout = "15:04"
)

// Service is a snapshot of a catalog entry taken at booking time.
// Later catalog changes never alter historical bookings.
type Service struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Booking represents a single scheduled appointment.
type Booking struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`      // YYYY-MM-DD, no time zone
	StartTime    string  `json:"startTime"` // HH:mm, 24-hour
	EndTime      string  `json:"endTime"`
	CustomerName string  `json:"customerName"`
	Service      Service `json:"service"`
}

// Validate checks the fields required before a booking may be stored.
// EndTime is intentionally not compared against StartTime; appointments
// that wrap past midnight are stored as entered.
func (b *Booking) Validate() error {
	if strings.TrimSpace(b.CustomerName) == "" {
		return fmt.Errorf("customer name is required")
	}
	if _, err := time.Parse(DateLayout, b.Date); err != nil {
		return fmt.Errorf("invalid date %q; expected YYYY-MM-DD", b.Date)
	}
	if _, err := time.Parse(TimeLayout, b.StartTime); err != nil {
		return fmt.Errorf("invalid start time %q; expected HH:mm", b.StartTime)
	}
	if _, err := time.Parse(TimeLayout, b.EndTime); err != nil {
		return fmt.Errorf("invalid end time %q; expected HH:mm", b.EndTime)
	}
	if b.Service.Name == "" {
		return fmt.Errorf("service is required")
	}
	if b.Service.Price < 0 {
		return fmt.Errorf("service price must not be negative")
	}
	return nil
}

// Day returns the booking's calendar date at midnight UTC.
func (b *Booking) Day() (time.Time, error) {
	return time.Parse(DateLayout, b.Date)
}

// StartMinutes returns the start time as minutes since midnight.
// Unparseable times sort first.
func (b *Booking) StartMinutes() int {
	t, err := time.Parse(TimeLayout, b.StartTime)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// StartHour returns the hour component of the start time.
func (b *Booking) StartHour() int {
	return b.StartMinutes() / 60
}
