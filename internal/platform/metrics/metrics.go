package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los collectors de la app. Todos los métodos toleran receptor nil.
type Metrics struct {
	ExpirySweeps      prometheus.Counter
	BookingsExpired   prometheus.Counter
	BookingsMalformed prometheus.Counter
	SweepDuration     prometheus.Histogram
	BookingsCreated   prometheus.Counter
	AdoptionsRejected prometheus.Counter
}

// New registra los collectors en reg. Con nil usa el registry global.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		ExpirySweeps: f.NewCounter(prometheus.CounterOpts{
			Name: "petcare_expiry_sweeps_total",
			Help: "Total number of booking expiry sweeps executed",
		}),
		BookingsExpired: f.NewCounter(prometheus.CounterOpts{
			Name: "petcare_bookings_expired_total",
			Help: "Total number of bookings transitioned to expired",
		}),
		BookingsMalformed: f.NewCounter(prometheus.CounterOpts{
			Name: "petcare_bookings_malformed_total",
			Help: "Bookings skipped by a sweep because date or end time could not be parsed",
		}),
		SweepDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "petcare_expiry_sweep_duration_seconds",
			Help:    "Duration of booking expiry sweeps",
			Buckets: prometheus.DefBuckets,
		}),
		BookingsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "petcare_bookings_created_total",
			Help: "Total number of bookings created",
		}),
		AdoptionsRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "petcare_adoptions_rejected_total",
			Help: "Adoptions rejected because the owner reached the pet limit",
		}),
	}
}

func (m *Metrics) ObserveSweep(d time.Duration, expired, malformed int) {
	if m == nil {
		return
	}
	m.ExpirySweeps.Inc()
	m.SweepDuration.Observe(d.Seconds())
	m.BookingsExpired.Add(float64(expired))
	m.BookingsMalformed.Add(float64(malformed))
}

func (m *Metrics) IncBookingsCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

func (m *Metrics) IncAdoptionsRejected() {
	if m == nil {
		return
	}
	m.AdoptionsRejected.Inc()
}
