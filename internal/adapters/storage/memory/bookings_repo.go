package memory

import (
	"context"
	"sort"
	"sync"

	"petcare-marketplace/internal/domain/bookings"
)

// BookingRepo: un solo RWMutex, así ni el listado del barrido ni el insert
// ven una reserva a medio escribir.
type BookingRepo struct {
	mu     sync.RWMutex
	byID   map[int64]bookings.Booking
	nextID int64
}

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{
		byID: make(map[int64]bookings.Booking),
	}
}

func (r *BookingRepo) Create(_ context.Context, b bookings.Booking) (bookings.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	b.ID = r.nextID
	if b.Status == "" {
		b.Status = bookings.StatusActive
	}
	r.byID[b.ID] = b
	return b, nil
}

func (r *BookingRepo) List(_ context.Context) ([]bookings.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(bookings.Booking) bool { return true }), nil
}

func (r *BookingRepo) ListByCaregiver(_ context.Context, caregiverID int64) ([]bookings.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(b bookings.Booking) bool { return b.CaregiverID == caregiverID }), nil
}

func (r *BookingRepo) MarkExpired(_ context.Context, ids []int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, id := range ids {
		b, ok := r.byID[id]
		if !ok || b.Status != bookings.StatusActive {
			continue
		}
		b.Status = bookings.StatusExpired
		r.byID[id] = b
		n++
	}
	return n, nil
}

func (r *BookingRepo) sorted(keep func(bookings.Booking) bool) []bookings.Booking {
	out := make([]bookings.Booking, 0, len(r.byID))
	for _, b := range r.byID {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
