package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petcare-marketplace/internal/domain/caregivers"
	"petcare-marketplace/internal/domain/pets"
	"petcare-marketplace/internal/platform/apperr"
	"petcare-marketplace/internal/platform/metrics"
)

type CaregiverLookup interface {
	GetByID(ctx context.Context, id int64) (caregivers.Caregiver, error)
}

type PetLookup interface {
	GetByID(ctx context.Context, id int64) (pets.Pet, error)
}

type Service struct {
	repo       Repository
	caregivers CaregiverLookup
	pets       PetLookup
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewService(repo Repository, cg CaregiverLookup, pl PetLookup, m *metrics.Metrics) *Service {
	return &Service{
		repo:       repo,
		caregivers: cg,
		pets:       pl,
		metrics:    m,
		now:        time.Now,
	}
}

type CreateInput struct {
	PetID       int64
	CaregiverID int64
	Date        string
	TimeFrom    string
	TimeTo      string
}

// Create valida en este orden: cuidador existe, cuidador activo, mascota
// existe, tipo aceptado. No se chequea solapamiento con otras reservas.
func (s *Service) Create(ctx context.Context, in CreateInput) (Booking, error) {
	const op = "bookings.create"

	if in.PetID <= 0 || in.CaregiverID <= 0 {
		return Booking{}, apperr.New(apperr.ErrInvalidArgument, op, "pet_id and caregiver_id required")
	}
	date := strings.TrimSpace(in.Date)
	from := strings.TrimSpace(in.TimeFrom)
	to := strings.TrimSpace(in.TimeTo)
	if date == "" || from == "" || to == "" {
		return Booking{}, apperr.New(apperr.ErrInvalidArgument, op, "date, time_from and time_to required")
	}

	cg, err := s.caregivers.GetByID(ctx, in.CaregiverID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Booking{}, apperr.New(apperr.ErrNotFound, op, "caregiver not found")
		}
		return Booking{}, err
	}
	if !cg.IsActive {
		return Booking{}, apperr.New(apperr.ErrUnavailable, op, "caregiver is not available")
	}

	p, err := s.pets.GetByID(ctx, in.PetID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Booking{}, apperr.New(apperr.ErrNotFound, op, "pet not found")
		}
		return Booking{}, err
	}
	if !cg.PetTypes.Contains(p.Type) {
		return Booking{}, apperr.New(apperr.ErrTypeMismatch, op,
			fmt.Sprintf("caregiver does not accept pet type %q", p.Type))
	}

	b, err := s.repo.Create(ctx, Booking{
		PetID:       p.ID,
		CaregiverID: cg.ID,
		Date:        date,
		TimeFrom:    from,
		TimeTo:      to,
		Status:      StatusActive,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return Booking{}, err
	}
	s.metrics.IncBookingsCreated()
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.repo.List(ctx)
}
