package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salonbook",
			Name:      "booking_mutations_total",
			Help:      "Count of booking mutations by operation.",
		},
		[]string{"op"},
	)

	storeLoadFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salonbook",
			Name:      "store_load_failures_total",
			Help:      "Count of booking blob reads that fell back to an empty list.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salonbook",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by handler.",
		},
		[]string{"handler"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingMutations, storeLoadFailures, httpRequests)
	})
}

func IncBookingMutation(op string) {
	bookingMutations.WithLabelValues(op).Inc()
}

func IncStoreLoadFailure() {
	storeLoadFailures.Inc()
}

func IncHTTP(handler string) {
	httpRequests.WithLabelValues(handler).Inc()
}
