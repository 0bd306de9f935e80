package caregivers

import "context"

type Repository interface {
	// Create asigna el ID. Username duplicado => apperr.ErrConflict.
	Create(ctx context.Context, c Caregiver) (Caregiver, error)
	GetByID(ctx context.Context, id int64) (Caregiver, error)
	// List ordena por ID.
	List(ctx context.Context) ([]Caregiver, error)
	SetActive(ctx context.Context, id int64, active bool) (Caregiver, error)
}
