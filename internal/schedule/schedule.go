// Package schedule contains the pure date-range filters and the
// grouping helpers behind the calendar, weekly grid and upcoming
// views. Inputs are never mutated.
package schedule

import (
	"sort"
	"time"

	"salonbook/internal/models"
)

// Daily returns the bookings whose date falls on the same calendar day
// as ref. The time of day on ref is irrelevant.
func Daily(bookings []models.Booking, ref time.Time) []models.Booking {
	target := ref.Format(models.DateLayout)
	return OnDate(bookings, target)
}

// Weekly returns the bookings whose date falls within the ISO week
// (Monday through Sunday) containing ref.
func Weekly(bookings []models.Booking, ref time.Time) []models.Booking {
	start := WeekStart(ref)
	end := start.AddDate(0, 0, 6)
	return between(bookings, start, end)
}

// Monthly returns the bookings whose date falls within the calendar
// month containing ref.
func Monthly(bookings []models.Booking, ref time.Time) []models.Booking {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return between(bookings, start, end)
}

// OnDate returns the bookings whose date equals the given YYYY-MM-DD
// string exactly.
func OnDate(bookings []models.Booking, date string) []models.Booking {
	out := make([]models.Booking, 0)
	for _, b := range bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out
}

// InMonth returns the bookings whose date falls in the YYYY-MM month
// of the given YYYY-MM-DD date string.
func InMonth(bookings []models.Booking, date string) []models.Booking {
	if len(date) < 7 {
		return []models.Booking{}
	}
	prefix := date[:7]
	out := make([]models.Booking, 0)
	for _, b := range bookings {
		if len(b.Date) >= 7 && b.Date[:7] == prefix {
			out = append(out, b)
		}
	}
	return out
}

// WeekStart returns the Monday of the week containing ref, at midnight
// UTC.
func WeekStart(ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// WorkingWeek returns the six working days (Monday through Saturday)
// of the week containing ref.
func WorkingWeek(ref time.Time) []time.Time {
	start := WeekStart(ref)
	days := make([]time.Time, 6)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// SlotBookings returns the bookings on the given day whose start time
// falls within the given hour.
func SlotBookings(bookings []models.Booking, day time.Time, hour int) []models.Booking {
	target := day.Format(models.DateLayout)
	out := make([]models.Booking, 0)
	for _, b := range bookings {
		if b.Date == target && b.StartHour() == hour {
			out = append(out, b)
		}
	}
	return out
}

// DateGroup is one date's bookings, sorted by start time.
type DateGroup struct {
	Date     string
	Bookings []models.Booking
}

// GroupByDate buckets bookings by date and sorts each bucket by start
// time. Groups come back in ascending date order.
func GroupByDate(bookings []models.Booking) []DateGroup {
	buckets := make(map[string][]models.Booking)
	for _, b := range bookings {
		buckets[b.Date] = append(buckets[b.Date], b)
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	// YYYY-MM-DD sorts chronologically as plain strings.
	sort.Strings(dates)

	groups := make([]DateGroup, 0, len(dates))
	for _, date := range dates {
		group := buckets[date]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].StartMinutes() < group[j].StartMinutes()
		})
		groups = append(groups, DateGroup{Date: date, Bookings: group})
	}
	return groups
}

func between(bookings []models.Booking, start, end time.Time) []models.Booking {
	out := make([]models.Booking, 0)
	for _, b := range bookings {
		day, err := b.Day()
		if err != nil {
			continue
		}
		if !day.Before(start) && !day.After(end) {
			out = append(out, b)
		}
	}
	return out
}
