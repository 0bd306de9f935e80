package bookings

import "time"

type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

// Booking reserva un cuidador para una mascota.
// Date/TimeFrom/TimeTo se guardan tal como llegaron; ver timeparse.go.
type Booking struct {
	ID          int64
	PetID       int64
	CaregiverID int64

	Date     string
	TimeFrom string
	TimeTo   string

	Status    Status
	CreatedAt time.Time
}

func (b Booking) IsActive() bool {
	return b.Status == StatusActive
}
