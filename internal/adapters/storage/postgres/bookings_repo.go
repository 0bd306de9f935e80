package postgres

import (
	"context"
	"database/sql"

	"petcare-marketplace/internal/domain/bookings"
)

type BookingsRepo struct {
	db *sql.DB
}

func NewBookingsRepo(db *sql.DB) *BookingsRepo {
	return &BookingsRepo{db: db}
}

const bookingColumns = `id, pet_id, caregiver_id, booking_date, time_from, time_to, status, created_at`

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) (bookings.Booking, error) {
	if b.Status == "" {
		b.Status = bookings.StatusActive
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO bookings (pet_id, caregiver_id, booking_date, time_from, time_to, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, b.PetID, b.CaregiverID, b.Date, b.TimeFrom, b.TimeTo, string(b.Status), b.CreatedAt).Scan(&b.ID)
	if err != nil {
		return bookings.Booking{}, mapErr("bookings.create", err)
	}
	return b, nil
}

func (r *BookingsRepo) List(ctx context.Context) ([]bookings.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY id ASC`)
}

func (r *BookingsRepo) ListByCaregiver(ctx context.Context, caregiverID int64) ([]bookings.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE caregiver_id = $1 ORDER BY id ASC`, caregiverID)
}

// MarkExpired es un único UPDATE: todo el lote entra o nada.
// El filtro por status hace que repetirlo no cambie nada.
func (r *BookingsRepo) MarkExpired(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET status = 'expired'
		WHERE id = ANY($1) AND status = 'active'
	`, ids)
	if err != nil {
		return 0, mapErr("bookings.mark_expired", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *BookingsRepo) list(ctx context.Context, query string, args ...any) ([]bookings.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapErr("bookings.list", err)
	}
	defer rows.Close()

	out := make([]bookings.Booking, 0)
	for rows.Next() {
		var (
			b      bookings.Booking
			status string
		)
		if err := rows.Scan(&b.ID, &b.PetID, &b.CaregiverID, &b.Date, &b.TimeFrom, &b.TimeTo, &status, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.Status = bookings.Status(status)
		out = append(out, b)
	}
	return out, rows.Err()
}
