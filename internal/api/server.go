// Package api exposes the booking application over HTTP: CRUD on
// bookings, the calendar/weekly/upcoming views and the stats
// dashboard.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"salonbook/internal/kv"
	"salonbook/internal/store"
)

// Server handles HTTP requests against the booking store.
type Server struct {
	store   *store.BookingStore
	kv      kv.Store
	logger  *zerolog.Logger
	limiter *rate.Limiter

	// now is stubbed in tests so period filters are deterministic.
	now func() time.Time
}

// NewServer constructs the HTTP server. The kv handle is only used by
// the readiness probe.
func NewServer(bookings *store.BookingStore, backend kv.Store, logger *zerolog.Logger) *Server {
	return &Server{
		store:   bookings,
		kv:      backend,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(50), 100),
		now:     time.Now,
	}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/services", s.handleServices)
	mux.HandleFunc("/api/v1/bookings", s.handleBookings)
	mux.HandleFunc("/api/v1/bookings/{id}", s.handleBookingByID)
	mux.HandleFunc("/api/v1/upcoming", s.handleUpcoming)
	mux.HandleFunc("/api/v1/week", s.handleWeek)
	mux.HandleFunc("/api/v1/stats", s.handleStats)
	mux.HandleFunc("/api/v1/reports/month.xlsx", s.handleMonthReport)

	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/readyz", s.handleReadyz)

	return s.withRequestID(s.withRateLimit(s.withLogging(mux)))
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()

	s.logger.Info().Int("port", port).Msg("HTTP server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctxPing, cancel := context.WithTimeout(r.Context(), time.Second)
	defer cancel()
	if err := s.kv.Ping(ctxPing); err != nil {
		http.Error(w, "kv not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
