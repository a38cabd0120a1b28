package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa os contadores do fluxo de agendamento.
// Um *Metrics nil é válido e não registra nada.
type Metrics struct {
	BookingsCreated     prometheus.Counter
	BookingConflicts    prometheus.Counter
	AvailabilityQueries *prometheus.CounterVec
	AvailabilityLatency prometheus.Histogram
}

func New(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "appointments_created_total",
			Help:      "Total number of confirmed appointments",
		}),
		BookingConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "conflicts_total",
			Help:      "Booking attempts rejected because the slot was already taken",
		}),
		AvailabilityQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "availability",
			Name:      "queries_total",
			Help:      "Availability resolutions by outcome",
		}, []string{"outcome"}),
		AvailabilityLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "availability",
			Name:      "duration_seconds",
			Help:      "Time spent resolving available slots",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.BookingsCreated,
			m.BookingConflicts,
			m.AvailabilityQueries,
			m.AvailabilityLatency,
		)
	}

	return m
}

func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

func (m *Metrics) BookingConflict() {
	if m == nil {
		return
	}
	m.BookingConflicts.Inc()
}

func (m *Metrics) ObserveAvailability(started time.Time, err error) {
	if m == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	m.AvailabilityQueries.WithLabelValues(outcome).Inc()
	m.AvailabilityLatency.Observe(time.Since(started).Seconds())
}
