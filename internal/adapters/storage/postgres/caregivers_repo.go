package postgres

import (
	"context"
	"database/sql"

	"petcare-marketplace/internal/domain/caregivers"
)

type CaregiversRepo struct {
	db *sql.DB
}

func NewCaregiversRepo(db *sql.DB) *CaregiversRepo {
	return &CaregiversRepo{db: db}
}

const caregiverColumns = `id, username, password_hash, pet_types, is_active, created_at`

func (r *CaregiversRepo) Create(ctx context.Context, c caregivers.Caregiver) (caregivers.Caregiver, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO caregivers (username, password_hash, pet_types, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, c.Username, c.PasswordHash, c.PetTypes.String(), c.IsActive, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return caregivers.Caregiver{}, mapErr("caregivers.create", err)
	}
	return c, nil
}

func (r *CaregiversRepo) GetByID(ctx context.Context, id int64) (caregivers.Caregiver, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+caregiverColumns+` FROM caregivers WHERE id = $1`, id)
	c, err := scanCaregiver(row)
	if err != nil {
		return caregivers.Caregiver{}, mapErr("caregivers.get", err)
	}
	return c, nil
}

func (r *CaregiversRepo) List(ctx context.Context) ([]caregivers.Caregiver, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+caregiverColumns+` FROM caregivers ORDER BY id ASC`)
	if err != nil {
		return nil, mapErr("caregivers.list", err)
	}
	defer rows.Close()

	out := make([]caregivers.Caregiver, 0)
	for rows.Next() {
		c, err := scanCaregiver(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CaregiversRepo) SetActive(ctx context.Context, id int64, active bool) (caregivers.Caregiver, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE caregivers
		SET is_active = $2
		WHERE id = $1
		RETURNING `+caregiverColumns, id, active)
	c, err := scanCaregiver(row)
	if err != nil {
		return caregivers.Caregiver{}, mapErr("caregivers.set_active", err)
	}
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCaregiver(s rowScanner) (caregivers.Caregiver, error) {
	var (
		c     caregivers.Caregiver
		types string
	)
	if err := s.Scan(&c.ID, &c.Username, &c.PasswordHash, &types, &c.IsActive, &c.CreatedAt); err != nil {
		return caregivers.Caregiver{}, err
	}
	c.PetTypes = caregivers.ParseTypeSet(types)
	return c, nil
}
