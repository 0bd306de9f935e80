package caregivers

import (
	"context"
	"errors"
	"strings"
	"time"

	"petcare-marketplace/internal/platform/apperr"
	"petcare-marketplace/internal/platform/password"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	Username string
	Password string
	PetTypes []string
}

// Register da de alta un cuidador activo.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Caregiver, error) {
	const op = "caregivers.register"

	username := strings.TrimSpace(in.Username)
	if username == "" {
		return Caregiver{}, apperr.New(apperr.ErrInvalidArgument, op, "username required")
	}
	types := NewTypeSet(in.PetTypes)
	if len(types) == 0 {
		return Caregiver{}, apperr.New(apperr.ErrInvalidArgument, op, "at least one pet type required")
	}
	for _, t := range types {
		if strings.Contains(t, ",") {
			return Caregiver{}, apperr.New(apperr.ErrInvalidArgument, op, "pet type cannot contain commas")
		}
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return Caregiver{}, err
	}

	c, err := s.repo.Create(ctx, Caregiver{
		Username:     username,
		PasswordHash: hash,
		PetTypes:     types,
		IsActive:     true,
		CreatedAt:    s.now(),
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return Caregiver{}, apperr.New(apperr.ErrConflict, op, "username already registered")
		}
		return Caregiver{}, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]Caregiver, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Caregiver, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Caregiver{}, notFound("caregivers.get", err)
	}
	return c, nil
}

// SetActive prende/apaga la disponibilidad. Con is_active=false no se aceptan reservas nuevas.
func (s *Service) SetActive(ctx context.Context, id int64, active bool) (Caregiver, error) {
	c, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return Caregiver{}, notFound("caregivers.set_active", err)
	}
	return c, nil
}

func notFound(op string, err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.New(apperr.ErrNotFound, op, "caregiver not found")
	}
	return err
}
