package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"petcare-marketplace/internal/platform/apperr"
)

// JSON escribe v como JSON.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorBody es el cuerpo de todas las respuestas de error.
type ErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// Error traduce el kind del error a status HTTP. Errores sin kind => 500 sin detalle.
func Error(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	status := StatusFor(kind)

	body := ErrorBody{Error: "internal error"}
	if kind != nil && status != http.StatusInternalServerError {
		body.Error = apperr.Message(err)
		body.Kind = kind.Error()
	}
	JSON(w, status, body)
}

func StatusFor(kind error) int {
	switch {
	case kind == nil:
		return http.StatusInternalServerError
	case errors.Is(kind, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, apperr.ErrUnavailable), errors.Is(kind, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(kind, apperr.ErrTypeMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(kind, apperr.ErrLimitExceeded), errors.Is(kind, apperr.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(kind, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, apperr.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Decode lee un body JSON; cualquier error es InvalidArgument.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperr.New(apperr.ErrInvalidArgument, "decode", "invalid json")
	}
	return nil
}

// ParseID parsea ids numéricos de path params.
func ParseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.New(apperr.ErrInvalidArgument, "parse_id", name+" must be a positive integer")
	}
	return id, nil
}
