package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"salonbook/internal/catalog"
	"salonbook/internal/metrics"
	"salonbook/internal/models"
	"salonbook/internal/schedule"
)

// BookingRequest is the request body for creating or replacing a
// booking. The service is referenced by catalog id and snapshotted
// into the stored record.
type BookingRequest struct {
	Date         string `json:"date"`      // Format: YYYY-MM-DD
	StartTime    string `json:"startTime"` // Format: HH:mm
	EndTime      string `json:"endTime"`
	CustomerName string `json:"customerName"`
	ServiceID    string `json:"serviceId"`
}

// BookingsResponse wraps a booking list.
type BookingsResponse struct {
	Bookings []models.Booking `json:"bookings"`
}

// handleServices returns the fixed catalog.
// GET /api/v1/services
func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("services")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Service{"services": catalog.All()})
}

// handleBookings lists or creates bookings.
// GET  /api/v1/bookings[?date=YYYY-MM-DD|period=day|week|month]
// POST /api/v1/bookings
func (s *Server) handleBookings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listBookings(w, r)
	case http.MethodPost:
		s.createBooking(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET or POST")
	}
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings_list")

	bookings := s.store.Load(r.Context())

	if date := r.URL.Query().Get("date"); date != "" {
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			writeError(w, http.StatusBadRequest, "invalid date format; expected YYYY-MM-DD")
			return
		}
		writeJSON(w, http.StatusOK, BookingsResponse{Bookings: schedule.OnDate(bookings, date)})
		return
	}

	switch period := r.URL.Query().Get("period"); period {
	case "":
	case "day":
		bookings = schedule.Daily(bookings, s.now())
	case "week":
		bookings = schedule.Weekly(bookings, s.now())
	case "month":
		bookings = schedule.Monthly(bookings, s.now())
	default:
		writeError(w, http.StatusBadRequest, "invalid period; expected day, week or month")
		return
	}

	writeJSON(w, http.StatusOK, BookingsResponse{Bookings: bookings})
}

func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings_create")

	booking, ok := s.decodeBooking(w, r)
	if !ok {
		return
	}
	booking.ID = s.newBookingID()

	if err := s.store.Add(r.Context(), booking); err != nil {
		s.logger.Error().Err(err).Msg("create booking failed")
		writeError(w, http.StatusInternalServerError, "failed to save booking")
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

// handleBookingByID updates or deletes one booking.
// PUT    /api/v1/bookings/{id}
// DELETE /api/v1/bookings/{id}
func (s *Server) handleBookingByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "booking id is required")
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.updateBooking(w, r, id)
	case http.MethodDelete:
		s.deleteBooking(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use PUT or DELETE")
	}
}

func (s *Server) updateBooking(w http.ResponseWriter, r *http.Request, id string) {
	metrics.IncHTTP("bookings_update")

	booking, ok := s.decodeBooking(w, r)
	if !ok {
		return
	}
	booking.ID = id

	if err := s.store.Update(r.Context(), booking); err != nil {
		s.logger.Error().Err(err).Msg("update booking failed")
		writeError(w, http.StatusInternalServerError, "failed to save booking")
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

func (s *Server) deleteBooking(w http.ResponseWriter, r *http.Request, id string) {
	metrics.IncHTTP("bookings_delete")

	if err := s.store.Delete(r.Context(), id); err != nil {
		s.logger.Error().Err(err).Msg("delete booking failed")
		writeError(w, http.StatusInternalServerError, "failed to delete booking")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBooking parses and validates a booking request body. On
// failure the response has already been written.
func (s *Server) decodeBooking(w http.ResponseWriter, r *http.Request) (models.Booking, bool) {
	var req BookingRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return models.Booking{}, false
	}

	svc, ok := catalog.ByID(req.ServiceID)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown service id %q", req.ServiceID))
		return models.Booking{}, false
	}

	booking := models.Booking{
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		CustomerName: req.CustomerName,
		Service:      svc,
	}
	if err := booking.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return models.Booking{}, false
	}
	return booking, true
}

// newBookingID derives a unique id from the current wall clock in
// milliseconds, bumping past any collision with an existing record.
func (s *Server) newBookingID() string {
	id := s.now().UnixMilli()
	existing := make(map[string]struct{})
	for _, b := range s.store.Bookings() {
		existing[b.ID] = struct{}{}
	}
	for {
		candidate := strconv.FormatInt(id, 10)
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
		id++
	}
}
