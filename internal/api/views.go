package api

import (
	"net/http"
	"time"

	"salonbook/internal/metrics"
	"salonbook/internal/models"
	"salonbook/internal/schedule"
)

// Working hours shown in the weekly grid, 09:00 through 20:00.
const (
	firstWorkingHour = 9
	lastWorkingHour  = 20
)

// UpcomingResponse lists bookings grouped by date, each group sorted
// by start time.
type UpcomingResponse struct {
	Groups []schedule.DateGroup `json:"groups"`
}

// HourSlot is one hour cell of the weekly grid.
type HourSlot struct {
	Hour     int              `json:"hour"`
	Bookings []models.Booking `json:"bookings"`
}

// WeekDay is one column of the weekly grid.
type WeekDay struct {
	Date  string     `json:"date"`
	Slots []HourSlot `json:"slots"`
}

// WeekResponse is the working-week grid, Monday through Saturday.
type WeekResponse struct {
	Start string    `json:"start"`
	Days  []WeekDay `json:"days"`
}

// handleUpcoming returns the date-grouped booking list.
// GET /api/v1/upcoming
func (s *Server) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("upcoming")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	bookings := s.store.Load(r.Context())
	writeJSON(w, http.StatusOK, UpcomingResponse{Groups: schedule.GroupByDate(bookings)})
}

// handleWeek returns the weekly grid for the week containing start
// (default: the current week).
// GET /api/v1/week?start=YYYY-MM-DD
func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("week")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	ref := s.now()
	if start := r.URL.Query().Get("start"); start != "" {
		parsed, err := time.Parse(models.DateLayout, start)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid start format; expected YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	bookings := s.store.Load(r.Context())

	days := schedule.WorkingWeek(ref)
	resp := WeekResponse{
		Start: schedule.WeekStart(ref).Format(models.DateLayout),
		Days:  make([]WeekDay, 0, len(days)),
	}
	for _, day := range days {
		column := WeekDay{Date: day.Format(models.DateLayout)}
		for hour := firstWorkingHour; hour <= lastWorkingHour; hour++ {
			column.Slots = append(column.Slots, HourSlot{
				Hour:     hour,
				Bookings: schedule.SlotBookings(bookings, day, hour),
			})
		}
		resp.Days = append(resp.Days, column)
	}

	writeJSON(w, http.StatusOK, resp)
}
