package expiry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-marketplace/internal/domain/bookings"
	"petcare-marketplace/internal/domain/caregivers"
	"petcare-marketplace/internal/platform/apperr"
	"petcare-marketplace/internal/platform/logger"
	"petcare-marketplace/internal/platform/metrics"
)

// -------------------------
// Fakes
// -------------------------

type fakeCaregivers []caregivers.Caregiver

func (f fakeCaregivers) List(_ context.Context) ([]caregivers.Caregiver, error) {
	return f, nil
}

type fakeStore struct {
	mu      sync.Mutex
	items   []bookings.Booking
	batches int
}

func (s *fakeStore) add(caregiverID int64, date, timeTo string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := int64(len(s.items) + 1)
	s.items = append(s.items, bookings.Booking{
		ID:          id,
		PetID:       1,
		CaregiverID: caregiverID,
		Date:        date,
		TimeFrom:    "8:00 AM",
		TimeTo:      timeTo,
		Status:      bookings.StatusActive,
	})
	return id
}

func (s *fakeStore) ListByCaregiver(_ context.Context, caregiverID int64) ([]bookings.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []bookings.Booking
	for _, b := range s.items {
		if b.CaregiverID == caregiverID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) MarkExpired(_ context.Context, ids []int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches++
	n := 0
	for _, id := range ids {
		b := &s.items[id-1]
		if b.Status == bookings.StatusActive {
			b.Status = bookings.StatusExpired
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) status(id int64) bookings.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id-1].Status
}

func (s *fakeStore) expiredIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []int64
	for _, b := range s.items {
		if b.Status == bookings.StatusExpired {
			out = append(out, b.ID)
		}
	}
	return out
}

// now fijo: 2025-03-10 14:30:20 UTC
var fixedNow = time.Date(2025, 3, 10, 14, 30, 20, 0, time.UTC)

func newTestReconciler(store *fakeStore, m *metrics.Metrics) *Reconciler {
	cgs := fakeCaregivers{{ID: 1}, {ID: 2}}
	r := NewReconciler(cgs, store, logger.NewNop(), m, time.Minute)
	r.now = func() time.Time { return fixedNow }
	return r
}

// -------------------------
// Evaluate
// -------------------------

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name    string
		date    string
		timeTo  string
		expired bool
	}{
		{"yesterday any time", "2025-03-09", "11:00 PM", true},
		{"yesterday morning", "2025-03-09", "11:00 AM", true},
		{"tomorrow early", "2025-03-11", "12:01 AM", false},
		{"today earlier", "2025-03-10", "1:00 PM", true},
		{"today same minute", "2025-03-10", "2:30 PM", true},
		{"today one minute before end", "2025-03-10", "2:31 PM", false},
		{"today 24h clock", "2025-03-10", "14:29", true},
		{"date with time part", "2025-03-10 09:00", "2:30 PM", true},
		{"unpadded date yesterday", "2025-3-9", "11:00 AM", true},
		{"unpadded date tomorrow", "2025-3-11", "9:00 AM", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Evaluate(bookings.Booking{Date: tc.date, TimeTo: tc.timeTo}, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, tc.expired, got)
		})
	}
}

func TestEvaluate_Malformed(t *testing.T) {
	_, err := Evaluate(bookings.Booking{Date: "next monday", TimeTo: "11:00 AM"}, fixedNow)
	require.ErrorIs(t, err, apperr.ErrMalformedRecord)

	_, err = Evaluate(bookings.Booking{Date: "2025-03-09", TimeTo: "late"}, fixedNow)
	require.ErrorIs(t, err, apperr.ErrMalformedRecord)

	_, err = Evaluate(bookings.Booking{Date: "2025-03-09", TimeTo: "0:30 PM"}, fixedNow)
	require.ErrorIs(t, err, apperr.ErrMalformedRecord)
}

func TestEvaluate_UsesLocationOfNow(t *testing.T) {
	// 2025-03-10 01:00 UTC es todavía 2025-03-09 22:00 en UTC-3.
	loc := time.FixedZone("UTC-3", -3*60*60)
	now := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC).In(loc)

	got, err := Evaluate(bookings.Booking{Date: "2025-03-09", TimeTo: "11:00 PM"}, now)
	require.NoError(t, err)
	assert.False(t, got)
}

// -------------------------
// RunOnce
// -------------------------

func TestRunOnce_ExpiresAndSkipsMalformed(t *testing.T) {
	store := &fakeStore{}
	m := metrics.New(prometheus.NewRegistry())
	r := newTestReconciler(store, m)

	past := store.add(1, "2025-03-09", "11:00 AM")
	bad := store.add(1, "not-a-date", "11:00 AM")
	boundary := store.add(2, "2025-03-10", "2:30 PM")
	future := store.add(2, "2025-03-10", "2:31 PM")
	badTime := store.add(2, "2025-03-01", "25:99")

	res, err := r.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, res.Scanned)
	assert.Equal(t, 2, res.Expired)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, fixedNow, res.At)
	assert.NotEmpty(t, res.RunID)

	assert.Equal(t, bookings.StatusExpired, store.status(past))
	assert.Equal(t, bookings.StatusExpired, store.status(boundary))
	assert.Equal(t, bookings.StatusActive, store.status(future))
	assert.Equal(t, bookings.StatusActive, store.status(bad))
	assert.Equal(t, bookings.StatusActive, store.status(badTime))

	assert.Equal(t, 1, store.batches)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExpirySweeps))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsExpired))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsMalformed))
}

func TestRunOnce_Idempotent(t *testing.T) {
	store := &fakeStore{}
	r := newTestReconciler(store, nil)

	store.add(1, "2025-03-09", "11:00 AM")
	store.add(1, "2025-03-10", "2:00 PM")
	store.add(2, "2025-03-12", "9:00 AM")

	first, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	afterFirst := store.expiredIDs()

	second, err := r.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, first.Expired)
	assert.Equal(t, 0, second.Expired)
	assert.Equal(t, 1, second.Scanned)
	assert.Equal(t, afterFirst, store.expiredIDs())
}

func TestRunOnce_NothingToExpireSkipsCommit(t *testing.T) {
	store := &fakeStore{}
	r := newTestReconciler(store, nil)
	store.add(1, "2025-04-01", "9:00 AM")

	res, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Expired)
	assert.Equal(t, 0, store.batches)
}

func TestRunOnce_Concurrent(t *testing.T) {
	store := &fakeStore{}
	r := newTestReconciler(store, nil)
	for i := 0; i < 20; i++ {
		store.add(int64(i%2+1), "2025-03-09", "11:00 AM")
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.RunOnce(context.Background())
			assert.NoError(t, err)
			mu.Lock()
			total += res.Expired
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Cada reserva cambia de estado exactamente una vez.
	assert.Equal(t, 20, total)
	assert.Len(t, store.expiredIDs(), 20)
}

func TestRun_SweepsImmediatelyAndStops(t *testing.T) {
	store := &fakeStore{}
	r := newTestReconciler(store, nil)
	id := store.add(1, "2025-03-09", "11:00 AM")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool {
		return store.status(id) == bookings.StatusExpired
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
