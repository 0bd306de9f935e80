package pets

import (
	"strings"
	"time"
)

// MaxPetsPerOwner es el tope de mascotas al momento de adoptar.
const MaxPetsPerOwner = 2

// Pet es una mascota con exactamente un dueño.
type Pet struct {
	ID      int64
	OwnerID int64

	Name string
	Type string // dog, cat, bird... siempre en minúsculas

	CreatedAt time.Time
}

// NormalizeType deja el tag de especie en su forma canónica.
func NormalizeType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
