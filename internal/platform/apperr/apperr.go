package apperr

import (
	"errors"
	"fmt"
)

// Kinds de error del dominio. Los servicios devuelven *Error con uno de estos
// como Kind; los adapters de storage pueden devolver el sentinel directo.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("unavailable")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrLimitExceeded   = errors.New("limit exceeded")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")

	// ErrMalformedRecord es interno: solo lo usa el reconciliador y nunca llega a un caller.
	ErrMalformedRecord = errors.New("malformed record")
)

var kinds = []error{
	ErrNotFound,
	ErrUnavailable,
	ErrTypeMismatch,
	ErrLimitExceeded,
	ErrInvalidArgument,
	ErrUnauthorized,
	ErrForbidden,
	ErrConflict,
	ErrMalformedRecord,
}

// Error agrega contexto de operación a un kind.
type Error struct {
	Kind error
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := e.Msg
	if msg == "" && e.Kind != nil {
		msg = e.Kind.Error()
	}
	base := msg
	if e.Op != "" {
		base = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is permite errors.Is(err, apperr.ErrNotFound) sin importar la causa envuelta.
func (e *Error) Is(target error) bool {
	return e != nil && e.Kind != nil && target == e.Kind
}

func New(kind error, op, msg string) error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

func Wrap(kind error, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf devuelve el kind del error o nil si no es ninguno conocido.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != nil {
		return ae.Kind
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Message devuelve el texto pensado para el cliente (sin op ni causa interna).
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Msg != "" {
			return ae.Msg
		}
		if ae.Kind != nil {
			return ae.Kind.Error()
		}
	}
	if k := KindOf(err); k != nil {
		return k.Error()
	}
	return "internal error"
}
