package reviews

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review es la calificación de un dueño a un cuidador.
type Review struct {
	ID          int64
	OwnerID     int64
	CaregiverID int64

	Rating  int
	Comment string

	CreatedAt time.Time
}
