package postgres

import (
	"context"
	"database/sql"

	"petcare-marketplace/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, u.Username, u.PasswordHash, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		return users.User{}, mapErr("users.create", err)
	}
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	return r.getOne(ctx, `WHERE username = $1`, username)
}

func (r *UsersRepo) getOne(ctx context.Context, where string, arg any) (users.User, error) {
	var u users.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
	`+where, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return users.User{}, mapErr("users.get", err)
	}
	return u, nil
}
