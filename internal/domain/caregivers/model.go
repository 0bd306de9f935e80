package caregivers

import (
	"strings"
	"time"
)

// Caregiver es un cuidador que acepta ciertos tipos de mascota.
type Caregiver struct {
	ID           int64
	Username     string
	PasswordHash string

	PetTypes TypeSet
	IsActive bool

	CreatedAt time.Time
}

// TypeSet es el conjunto de tipos aceptados. Se persiste como texto
// separado por comas ("dog,cat"); en memoria sin duplicados y en minúsculas.
type TypeSet []string

// ParseTypeSet acepta el texto persistido. Entradas vacías se ignoran.
func ParseTypeSet(raw string) TypeSet {
	return NewTypeSet(strings.Split(raw, ","))
}

// NewTypeSet normaliza y deduplica manteniendo el orden de aparición.
func NewTypeSet(items []string) TypeSet {
	seen := make(map[string]struct{}, len(items))
	out := make(TypeSet, 0, len(items))
	for _, it := range items {
		t := strings.ToLower(strings.TrimSpace(it))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (s TypeSet) Contains(t string) bool {
	t = strings.ToLower(strings.TrimSpace(t))
	for _, it := range s {
		if it == t {
			return true
		}
	}
	return false
}

// String es la forma persistida.
func (s TypeSet) String() string {
	return strings.Join(s, ",")
}
