package bookings

import "context"

type Repository interface {
	// Create asigna el ID.
	Create(ctx context.Context, b Booking) (Booking, error)
	// List ordena por ID.
	List(ctx context.Context) ([]Booking, error)
	ListByCaregiver(ctx context.Context, caregiverID int64) ([]Booking, error)

	// MarkExpired pasa a expired, en un solo commit, las reservas de ids que
	// sigan activas. Devuelve cuántas cambiaron; las ya expiradas no cuentan.
	MarkExpired(ctx context.Context, ids []int64) (int, error)
}
