package api

import (
	"net/http"
	"time"

	"salonbook/internal/metrics"
	"salonbook/internal/models"
	"salonbook/internal/schedule"
	"salonbook/internal/stats"
)

// StatsResponse is the dashboard aggregate for one reference date.
type StatsResponse struct {
	Date       string             `json:"date"`
	DayRevenue int64              `json:"dayRevenue"`
	Revenue    stats.Revenue      `json:"revenue"`
	Month      stats.MonthSummary `json:"month"`
	Services   struct {
		Weekly  stats.Summary `json:"weekly"`
		Monthly stats.Summary `json:"monthly"`
	} `json:"services"`
}

// handleStats returns revenue and service statistics around a
// reference date (default: today).
// GET /api/v1/stats?date=YYYY-MM-DD
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("stats")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	ref := s.now()
	date := r.URL.Query().Get("date")
	if date == "" {
		date = ref.Format(models.DateLayout)
	} else {
		parsed, err := time.Parse(models.DateLayout, date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date format; expected YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	bookings := s.store.Load(r.Context())

	resp := StatsResponse{
		Date:       date,
		DayRevenue: stats.DayRevenue(bookings, date),
		Revenue:    stats.RevenueStats(bookings, ref),
		Month:      stats.MonthStats(bookings, date),
	}
	resp.Services.Weekly = stats.ServiceStats(schedule.Weekly(bookings, ref))
	resp.Services.Monthly = stats.ServiceStats(schedule.Monthly(bookings, ref))

	writeJSON(w, http.StatusOK, resp)
}
