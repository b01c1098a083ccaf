// Package stats computes revenue and service aggregates over booking
// subsets. Everything here is a stateless transform recomputed on each
// read.
package stats

import (
	"time"

	"salonbook/internal/models"
	"salonbook/internal/schedule"
)

// NoService is the sentinel name reported when a subset is empty.
const NoService = "None"

// ServiceCount pairs a service name with how often it was booked.
type ServiceCount struct {
	Service string `json:"service"`
	Count   int    `json:"count"`
}

// ServiceRevenue pairs a service name with its summed revenue.
type ServiceRevenue struct {
	Service string `json:"service"`
	Revenue int64  `json:"revenue"`
}

// Summary holds the winners over one booking subset.
type Summary struct {
	MostBooked  ServiceCount   `json:"mostBooked"`
	MostRevenue ServiceRevenue `json:"mostRevenue"`
}

// Revenue holds revenue totals for the standard periods around a
// reference instant.
type Revenue struct {
	Daily   int64 `json:"daily"`
	Weekly  int64 `json:"weekly"`
	Monthly int64 `json:"monthly"`
}

// MonthSummary is the stats-dashboard aggregate for one calendar month.
type MonthSummary struct {
	TotalRevenue int64          `json:"totalRevenue"`
	MostBooked   ServiceCount   `json:"mostBooked"`
	MostRevenue  ServiceRevenue `json:"mostRevenue"`
}

// SumRevenue sums service prices over the subset. Empty subsets sum
// to zero.
func SumRevenue(subset []models.Booking) int64 {
	var total int64
	for _, b := range subset {
		total += b.Service.Price
	}
	return total
}

// ServiceStats groups the subset by service name and reports the most
// booked and highest revenue services. Ties go to the service first
// encountered in the subset's order.
func ServiceStats(subset []models.Booking) Summary {
	type tally struct {
		count   int
		revenue int64
	}

	tallies := make(map[string]*tally)
	var order []string
	for _, b := range subset {
		name := b.Service.Name
		if _, ok := tallies[name]; !ok {
			tallies[name] = &tally{}
			order = append(order, name)
		}
		tallies[name].count++
		tallies[name].revenue += b.Service.Price
	}

	summary := Summary{
		MostBooked:  ServiceCount{Service: NoService},
		MostRevenue: ServiceRevenue{Service: NoService},
	}
	for _, name := range order {
		t := tallies[name]
		if t.count > summary.MostBooked.Count || summary.MostBooked.Service == NoService {
			summary.MostBooked = ServiceCount{Service: name, Count: t.count}
		}
		if t.revenue > summary.MostRevenue.Revenue || summary.MostRevenue.Service == NoService {
			summary.MostRevenue = ServiceRevenue{Service: name, Revenue: t.revenue}
		}
	}
	return summary
}

// RevenueStats computes daily, weekly and monthly revenue totals
// around the reference instant.
func RevenueStats(bookings []models.Booking, ref time.Time) Revenue {
	return Revenue{
		Daily:   SumRevenue(schedule.Daily(bookings, ref)),
		Weekly:  SumRevenue(schedule.Weekly(bookings, ref)),
		Monthly: SumRevenue(schedule.Monthly(bookings, ref)),
	}
}

// DayRevenue sums revenue for the exact YYYY-MM-DD date.
func DayRevenue(bookings []models.Booking, date string) int64 {
	return SumRevenue(schedule.OnDate(bookings, date))
}

// MonthStats aggregates the calendar month containing the given
// YYYY-MM-DD date.
func MonthStats(bookings []models.Booking, date string) MonthSummary {
	monthBookings := schedule.InMonth(bookings, date)
	summary := ServiceStats(monthBookings)
	return MonthSummary{
		TotalRevenue: SumRevenue(monthBookings),
		MostBooked:   summary.MostBooked,
		MostRevenue:  summary.MostRevenue,
	}
}
