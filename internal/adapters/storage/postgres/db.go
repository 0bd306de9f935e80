package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"petcare-marketplace/internal/platform/apperr"
)

//go:embed schema.sql
var schemaSQL string

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate aplica schema.sql. Es idempotente (CREATE ... IF NOT EXISTS).
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// querier lo cumplen *sql.DB y *sql.Tx; los repos no saben si están en una tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// mapErr traduce errores del driver a kinds del dominio.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return apperr.Wrap(apperr.ErrConflict, op, err)
		case codeForeignKeyViolation:
			return apperr.Wrap(apperr.ErrNotFound, op, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Store agrupa los repos sobre una misma *sql.DB.
type Store struct {
	Users         *UsersRepo
	Pets          *PetsRepo
	OwnerTx       *OwnerTx
	Caregivers    *CaregiversRepo
	Bookings      *BookingsRepo
	Reviews       *ReviewsRepo
	HealthRecords *HealthRecordsRepo
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		Users:         NewUsersRepo(db),
		Pets:          NewPetsRepo(db),
		OwnerTx:       NewOwnerTx(db),
		Caregivers:    NewCaregiversRepo(db),
		Bookings:      NewBookingsRepo(db),
		Reviews:       NewReviewsRepo(db),
		HealthRecords: NewHealthRecordsRepo(db),
	}
}
