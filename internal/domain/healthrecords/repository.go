package healthrecords

import "context"

type Repository interface {
	// Upsert crea o reemplaza la ficha de rec.PetID.
	Upsert(ctx context.Context, rec HealthRecord) (HealthRecord, error)
	GetByPet(ctx context.Context, petID int64) (HealthRecord, error)
}
