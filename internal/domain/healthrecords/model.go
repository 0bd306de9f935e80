package healthrecords

import "time"

type Source string

const (
	SourceManual Source = "manual"
	SourceClinic Source = "clinic"
)

// HealthRecord es la ficha veterinaria de una mascota (0 o 1 por mascota).
// Se borra junto con la mascota.
type HealthRecord struct {
	PetID int64

	Veterinarian string
	Vaccinations []string
	Allergies    []string
	Notes        string

	// LastCheckup es solo fecha (medianoche UTC).
	LastCheckup *time.Time

	Source    Source
	UpdatedBy int64
	UpdatedAt time.Time
}
