package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"petcare-marketplace/internal/domain/caregivers"
	"petcare-marketplace/internal/platform/apperr"
)

type CaregiverRepo struct {
	mu     sync.RWMutex
	byID   map[int64]caregivers.Caregiver
	nextID int64
}

func NewCaregiverRepo() *CaregiverRepo {
	return &CaregiverRepo{
		byID: make(map[int64]caregivers.Caregiver),
	}
}

func (r *CaregiverRepo) Create(_ context.Context, c caregivers.Caregiver) (caregivers.Caregiver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if strings.EqualFold(existing.Username, c.Username) {
			return caregivers.Caregiver{}, apperr.ErrConflict
		}
	}
	r.nextID++
	c.ID = r.nextID
	// Se guarda como en la tabla: texto separado por comas.
	c.PetTypes = caregivers.ParseTypeSet(c.PetTypes.String())
	r.byID[c.ID] = c
	return c, nil
}

func (r *CaregiverRepo) GetByID(_ context.Context, id int64) (caregivers.Caregiver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return caregivers.Caregiver{}, apperr.ErrNotFound
	}
	return c, nil
}

func (r *CaregiverRepo) List(_ context.Context) ([]caregivers.Caregiver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]caregivers.Caregiver, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CaregiverRepo) SetActive(_ context.Context, id int64, active bool) (caregivers.Caregiver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return caregivers.Caregiver{}, apperr.ErrNotFound
	}
	c.IsActive = active
	r.byID[id] = c
	return c, nil
}
