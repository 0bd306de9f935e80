package pets

import "context"

type Repository interface {
	// Create asigna el ID.
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
}

// OwnerTx serializa lecturas+escrituras sobre las mascotas de un mismo dueño.
// fn recibe un Repository ligado a esa sección crítica. Dueño inexistente => apperr.ErrNotFound.
type OwnerTx interface {
	RunForOwner(ctx context.Context, ownerID int64, fn func(ctx context.Context, repo Repository) error) error
}
