package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-marketplace/internal/platform/apperr"
)

func TestMapErr(t *testing.T) {
	assert.NoError(t, mapErr("op", nil))

	require.ErrorIs(t, mapErr("op", sql.ErrNoRows), apperr.ErrNotFound)

	dup := fmt.Errorf("exec: %w", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "users_username_key"})
	err := mapErr("users.create", dup)
	require.ErrorIs(t, err, apperr.ErrConflict)

	fk := &pgconn.PgError{Code: codeForeignKeyViolation}
	require.ErrorIs(t, mapErr("pets.create", fk), apperr.ErrNotFound)

	other := errors.New("connection reset")
	err = mapErr("pets.list", other)
	require.ErrorIs(t, err, other)
	assert.Nil(t, apperr.KindOf(err))
}

func TestSchema_Embedded(t *testing.T) {
	for _, table := range []string{"users", "pets", "caregivers", "bookings", "reviews", "health_records"} {
		assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.True(t, strings.Contains(schemaSQL, "CHECK (rating BETWEEN 1 AND 5)"))
	assert.True(t, strings.Contains(schemaSQL, "ON DELETE CASCADE"))
}
