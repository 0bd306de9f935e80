package expiry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"petcare-marketplace/internal/domain/bookings"
	"petcare-marketplace/internal/domain/caregivers"
	"petcare-marketplace/internal/platform/logger"
	"petcare-marketplace/internal/platform/metrics"
)

// DefaultInterval entre barridos del loop de fondo.
const DefaultInterval = 300 * time.Second

type CaregiverLister interface {
	List(ctx context.Context) ([]caregivers.Caregiver, error)
}

type BookingStore interface {
	ListByCaregiver(ctx context.Context, caregiverID int64) ([]bookings.Booking, error)
	MarkExpired(ctx context.Context, ids []int64) (int, error)
}

// Result resume un barrido.
type Result struct {
	RunID   string
	Scanned int // reservas activas evaluadas
	Expired int // transiciones efectivas (active -> expired)
	Skipped int // date/time_to sin parsear
	At      time.Time
}

// Reconciler pasa a expired las reservas cuyo fin ya ocurrió.
// RunOnce puede correr en paralelo con Run: MarkExpired solo toca filas activas.
type Reconciler struct {
	caregivers CaregiverLister
	bookings   BookingStore
	log        logger.Logger
	metrics    *metrics.Metrics
	interval   time.Duration
	now        func() time.Time
}

func NewReconciler(cg CaregiverLister, bk BookingStore, log logger.Logger, m *metrics.Metrics, interval time.Duration) *Reconciler {
	if log == nil {
		log = logger.NewNop()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reconciler{
		caregivers: cg,
		bookings:   bk,
		log:        log,
		metrics:    m,
		interval:   interval,
		now:        time.Now,
	}
}

func (r *Reconciler) Interval() time.Duration { return r.interval }

// RunOnce hace un barrido completo. "now" se toma una sola vez.
// Un registro que no parsea se loguea y se saltea; no corta el barrido.
func (r *Reconciler) RunOnce(ctx context.Context) (Result, error) {
	started := time.Now()
	now := r.now()
	res := Result{RunID: uuid.NewString(), At: now}
	log := r.log.With(map[string]any{"run_id": res.RunID})

	cgs, err := r.caregivers.List(ctx)
	if err != nil {
		return res, fmt.Errorf("expiry: list caregivers: %w", err)
	}

	var expired []int64
	for _, cg := range cgs {
		items, err := r.bookings.ListByCaregiver(ctx, cg.ID)
		if err != nil {
			return res, fmt.Errorf("expiry: list bookings of caregiver %d: %w", cg.ID, err)
		}
		for _, b := range items {
			if !b.IsActive() {
				continue
			}
			res.Scanned++

			ok, err := Evaluate(b, now)
			if err != nil {
				res.Skipped++
				log.Warn("skipping malformed booking", map[string]any{
					"booking_id":   b.ID,
					"caregiver_id": b.CaregiverID,
					"date":         b.Date,
					"time_to":      b.TimeTo,
					"error":        err.Error(),
				})
				continue
			}
			if ok {
				expired = append(expired, b.ID)
			}
		}
	}

	if len(expired) > 0 {
		n, err := r.bookings.MarkExpired(ctx, expired)
		if err != nil {
			return res, fmt.Errorf("expiry: mark expired: %w", err)
		}
		res.Expired = n
	}

	r.metrics.ObserveSweep(time.Since(started), res.Expired, res.Skipped)
	log.Info("expiry sweep done", map[string]any{
		"scanned": res.Scanned,
		"expired": res.Expired,
		"skipped": res.Skipped,
	})
	return res, nil
}

// Run barre al arrancar y luego cada interval hasta que ctx se cancele.
// Los errores de un barrido se loguean; el loop sigue.
func (r *Reconciler) Run(ctx context.Context) error {
	r.log.Info("expiry reconciler started", map[string]any{"interval": r.interval.String()})

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
			r.log.Error("expiry sweep failed", map[string]any{"error": err.Error()})
		}

		select {
		case <-ctx.Done():
			r.log.Info("expiry reconciler stopped", nil)
			return nil
		case <-ticker.C:
		}
	}
}

// Evaluate decide si b ya terminó respecto de now, con resolución de minuto.
// Fecha anterior a hoy => expirada sin mirar la hora; hoy => fin <= now.
// Error => apperr.ErrMalformedRecord.
func Evaluate(b bookings.Booking, now time.Time) (bool, error) {
	loc := now.Location()
	end, err := bookings.EndsAt(b, loc)
	if err != nil {
		return false, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	day := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)

	switch {
	case day.Before(today):
		return true, nil
	case day.After(today):
		return false, nil
	}

	nowMinute := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, loc)
	return !end.After(nowMinute), nil
}
