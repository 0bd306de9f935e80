package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"petcare-marketplace/internal/domain/pets"
	"petcare-marketplace/internal/platform/apperr"
)

type PetsRepo struct {
	q querier
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{q: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.q.QueryRowContext(ctx, `
		INSERT INTO pets (owner_id, name, pet_type, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, p.OwnerID, p.Name, p.Type, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, mapErr("pets.create", err)
	}
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	var p pets.Pet
	err := r.q.QueryRowContext(ctx, `
		SELECT id, owner_id, name, pet_type, created_at
		FROM pets
		WHERE id = $1
	`, id).Scan(&p.ID, &p.OwnerID, &p.Name, &p.Type, &p.CreatedAt)
	if err != nil {
		return pets.Pet{}, mapErr("pets.get", err)
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.list(ctx, `
		SELECT id, owner_id, name, pet_type, created_at
		FROM pets
		ORDER BY id ASC
	`)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	return r.list(ctx, `
		SELECT id, owner_id, name, pet_type, created_at
		FROM pets
		WHERE owner_id = $1
		ORDER BY id ASC
	`, ownerID)
}

func (r *PetsRepo) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT count(*) FROM pets WHERE owner_id = $1`, ownerID).Scan(&n); err != nil {
		return 0, mapErr("pets.count", err)
	}
	return n, nil
}

func (r *PetsRepo) list(ctx context.Context, query string, args ...any) ([]pets.Pet, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapErr("pets.list", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Type, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

const defaultOwnerTxTimeout = 5 * time.Second

// OwnerTx bloquea la fila del dueño (SELECT ... FOR UPDATE) durante fn, así
// dos adopciones del mismo dueño no cuentan a la vez.
type OwnerTx struct {
	db      *sql.DB
	timeout time.Duration
}

func NewOwnerTx(db *sql.DB) *OwnerTx {
	return &OwnerTx{db: db, timeout: defaultOwnerTxTimeout}
}

func (t *OwnerTx) RunForOwner(ctx context.Context, ownerID int64, fn func(ctx context.Context, repo pets.Repository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var locked int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, ownerID).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrNotFound
		}
		return mapErr("pets.lock_owner", err)
	}

	if err := fn(ctx, &PetsRepo{q: tx}); err != nil {
		return err
	}
	return tx.Commit()
}
