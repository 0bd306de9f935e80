package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-marketplace/internal/platform/apperr"
)

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		apperr.ErrNotFound:        http.StatusNotFound,
		apperr.ErrUnavailable:     http.StatusConflict,
		apperr.ErrConflict:        http.StatusConflict,
		apperr.ErrTypeMismatch:    http.StatusUnprocessableEntity,
		apperr.ErrLimitExceeded:   http.StatusBadRequest,
		apperr.ErrInvalidArgument: http.StatusBadRequest,
		apperr.ErrUnauthorized:    http.StatusUnauthorized,
		apperr.ErrForbidden:       http.StatusForbidden,
		nil:                       http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, StatusFor(kind), "kind=%v", kind)
	}
}

func TestError_WritesKindAndMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apperr.New(apperr.ErrTypeMismatch, "bookings.create", `pet type "bird" not accepted by caregiver`))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "type mismatch", body["kind"])
	assert.Contains(t, body["error"], "bird")
}

func TestError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, errors.New("pq: connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42", "petID")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	for _, raw := range []string{"", "0", "-1", "abc"} {
		_, err := ParseID(raw, "petID")
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument, raw)
	}
}
