package api

import (
	"fmt"
	"net/http"
	"time"

	"salonbook/internal/metrics"
	"salonbook/internal/report"
)

// handleMonthReport streams the Excel report for one calendar month.
// GET /api/v1/reports/month.xlsx?month=YYYY-MM
func (s *Server) handleMonthReport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("month_report")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = s.now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		writeError(w, http.StatusBadRequest, "invalid month format; expected YYYY-MM")
		return
	}

	bookings := s.store.Load(r.Context())

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=bookings_%s.xlsx", month))

	if err := report.WriteMonth(w, bookings, month); err != nil {
		s.logger.Error().Err(err).Str("month", month).Msg("month report failed")
	}
}
