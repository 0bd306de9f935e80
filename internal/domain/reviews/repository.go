package reviews

import "context"

type Repository interface {
	Create(ctx context.Context, r Review) (Review, error)
	// ListByCaregiver ordena por fecha de creación (y por ID en empates).
	ListByCaregiver(ctx context.Context, caregiverID int64) ([]Review, error)
}
