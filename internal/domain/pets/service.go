package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petcare-marketplace/internal/domain/users"
	"petcare-marketplace/internal/platform/apperr"
	"petcare-marketplace/internal/platform/metrics"
)

// OwnerLookup evita depender del servicio completo de users.
type OwnerLookup interface {
	GetByID(ctx context.Context, id int64) (users.User, error)
}

type Service struct {
	repo    Repository
	owners  OwnerLookup
	tx      OwnerTx
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, owners OwnerLookup, tx OwnerTx, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		owners:  owners,
		tx:      tx,
		metrics: m,
		now:     time.Now,
	}
}

type CreateInput struct {
	OwnerID int64
	Name    string
	Type    string
}

// Create es el camino administrativo: NO aplica el tope de adopción.
// Es intencional que existan dos entradas (Create sin tope, Adopt con tope).
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	const op = "pets.create"

	p, err := s.validate(op, in)
	if err != nil {
		return Pet{}, err
	}
	if _, err := s.owners.GetByID(ctx, in.OwnerID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Pet{}, apperr.New(apperr.ErrNotFound, op, "user not found")
		}
		return Pet{}, err
	}
	return s.repo.Create(ctx, p)
}

// Adopt crea una mascota para ownerID si todavía tiene menos de MaxPetsPerOwner.
// El conteo y el insert corren dentro de OwnerTx, serializados por dueño.
func (s *Service) Adopt(ctx context.Context, ownerID int64, name, petType string) (Pet, error) {
	const op = "pets.adopt"

	p, err := s.validate(op, CreateInput{OwnerID: ownerID, Name: name, Type: petType})
	if err != nil {
		return Pet{}, err
	}

	var created Pet
	err = s.tx.RunForOwner(ctx, ownerID, func(ctx context.Context, repo Repository) error {
		n, err := repo.CountByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		if n >= MaxPetsPerOwner {
			s.metrics.IncAdoptionsRejected()
			return apperr.New(apperr.ErrLimitExceeded, op,
				fmt.Sprintf("you can only adopt up to %d pets", MaxPetsPerOwner))
		}
		created, err = repo.Create(ctx, p)
		return err
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.ErrNotFound {
			return Pet{}, apperr.New(apperr.ErrNotFound, op, "user not found")
		}
		return Pet{}, err
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Pet{}, apperr.New(apperr.ErrNotFound, "pets.get", "pet not found")
		}
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// OwnerOf expone el dueño de una mascota (lo usa healthrecords sin importar el servicio).
func (s *Service) OwnerOf(ctx context.Context, petID int64) (int64, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return 0, err
	}
	return p.OwnerID, nil
}

func (s *Service) validate(op string, in CreateInput) (Pet, error) {
	if in.OwnerID <= 0 {
		return Pet{}, apperr.New(apperr.ErrInvalidArgument, op, "owner_id required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, apperr.New(apperr.ErrInvalidArgument, op, "name required")
	}
	typ := NormalizeType(in.Type)
	if typ == "" {
		return Pet{}, apperr.New(apperr.ErrInvalidArgument, op, "pet_type required")
	}
	return Pet{
		OwnerID:   in.OwnerID,
		Name:      name,
		Type:      typ,
		CreatedAt: s.now(),
	}, nil
}
