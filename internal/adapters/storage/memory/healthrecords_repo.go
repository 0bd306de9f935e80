package memory

import (
	"context"
	"sync"

	"petcare-marketplace/internal/domain/healthrecords"
	"petcare-marketplace/internal/platform/apperr"
)

type HealthRecordRepo struct {
	mu    sync.RWMutex
	byPet map[int64]healthrecords.HealthRecord
}

func NewHealthRecordRepo() *HealthRecordRepo {
	return &HealthRecordRepo{
		byPet: make(map[int64]healthrecords.HealthRecord),
	}
}

func (r *HealthRecordRepo) Upsert(_ context.Context, rec healthrecords.HealthRecord) (healthrecords.HealthRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.Vaccinations = append([]string(nil), rec.Vaccinations...)
	rec.Allergies = append([]string(nil), rec.Allergies...)
	r.byPet[rec.PetID] = rec
	return rec, nil
}

func (r *HealthRecordRepo) GetByPet(_ context.Context, petID int64) (healthrecords.HealthRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byPet[petID]
	if !ok {
		return healthrecords.HealthRecord{}, apperr.ErrNotFound
	}
	return rec, nil
}
