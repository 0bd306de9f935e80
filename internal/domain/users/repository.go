package users

import "context"

type Repository interface {
	// Create asigna el ID. Username duplicado => apperr.ErrConflict.
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
