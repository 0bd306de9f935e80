package memory

import (
	"context"
	"sort"
	"sync"

	"petcare-marketplace/internal/domain/reviews"
)

type ReviewRepo struct {
	mu     sync.RWMutex
	items  []reviews.Review
	nextID int64
}

func NewReviewRepo() *ReviewRepo {
	return &ReviewRepo{}
}

func (r *ReviewRepo) Create(_ context.Context, rv reviews.Review) (reviews.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	rv.ID = r.nextID
	r.items = append(r.items, rv)
	return rv, nil
}

func (r *ReviewRepo) ListByCaregiver(_ context.Context, caregiverID int64) ([]reviews.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reviews.Review, 0)
	for _, rv := range r.items {
		if rv.CaregiverID == caregiverID {
			out = append(out, rv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
