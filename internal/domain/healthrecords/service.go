package healthrecords

import (
	"context"
	"errors"
	"strings"
	"time"

	"petcare-marketplace/internal/platform/apperr"
)

// PetOwnerLookup desacopla este paquete del servicio de pets.
type PetOwnerLookup interface {
	OwnerOf(ctx context.Context, petID int64) (int64, error)
}

type Service struct {
	repo Repository
	pets PetOwnerLookup
	now  func() time.Time
}

func NewService(repo Repository, pets PetOwnerLookup) *Service {
	return &Service{
		repo: repo,
		pets: pets,
		now:  time.Now,
	}
}

type UpsertInput struct {
	Veterinarian string
	Vaccinations []string
	Allergies    []string
	Notes        string
	LastCheckup  string // YYYY-MM-DD, opcional
	Source       Source
}

// Upsert reemplaza la ficha completa. Solo el dueño de la mascota puede escribirla.
func (s *Service) Upsert(ctx context.Context, actorID, petID int64, in UpsertInput) (HealthRecord, error) {
	const op = "healthrecords.upsert"

	if err := s.authorize(ctx, op, actorID, petID); err != nil {
		return HealthRecord{}, err
	}

	src := in.Source
	switch src {
	case "":
		src = SourceManual
	case SourceManual, SourceClinic:
	default:
		return HealthRecord{}, apperr.New(apperr.ErrInvalidArgument, op, "source must be manual or clinic")
	}

	rec := HealthRecord{
		PetID:        petID,
		Veterinarian: strings.TrimSpace(in.Veterinarian),
		Vaccinations: cleanList(in.Vaccinations),
		Allergies:    cleanList(in.Allergies),
		Notes:        strings.TrimSpace(in.Notes),
		Source:       src,
		UpdatedBy:    actorID,
		UpdatedAt:    s.now().UTC(),
	}

	if raw := strings.TrimSpace(in.LastCheckup); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return HealthRecord{}, apperr.New(apperr.ErrInvalidArgument, op, "last_checkup must be YYYY-MM-DD")
		}
		rec.LastCheckup = &d
	}

	return s.repo.Upsert(ctx, rec)
}

// Get devuelve la ficha; también restringido al dueño.
func (s *Service) Get(ctx context.Context, actorID, petID int64) (HealthRecord, error) {
	const op = "healthrecords.get"

	if err := s.authorize(ctx, op, actorID, petID); err != nil {
		return HealthRecord{}, err
	}
	rec, err := s.repo.GetByPet(ctx, petID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return HealthRecord{}, apperr.New(apperr.ErrNotFound, op, "health record not found")
		}
		return HealthRecord{}, err
	}
	return rec, nil
}

func (s *Service) authorize(ctx context.Context, op string, actorID, petID int64) error {
	if actorID <= 0 {
		return apperr.New(apperr.ErrUnauthorized, op, "unauthorized")
	}
	owner, err := s.pets.OwnerOf(ctx, petID)
	if err != nil {
		return err
	}
	if owner != actorID {
		return apperr.New(apperr.ErrForbidden, op, "only the pet owner can access its health record")
	}
	return nil
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
