package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petcare-marketplace/internal/domain/caregivers"
	"petcare-marketplace/internal/platform/apperr"
)

const maxCommentLen = 2000

type CaregiverLookup interface {
	GetByID(ctx context.Context, id int64) (caregivers.Caregiver, error)
}

type Service struct {
	repo       Repository
	caregivers CaregiverLookup
	now        func() time.Time
}

func NewService(repo Repository, cg CaregiverLookup) *Service {
	return &Service{
		repo:       repo,
		caregivers: cg,
		now:        time.Now,
	}
}

// Submit registra una review. No exige una reserva previa entre dueño y cuidador.
func (s *Service) Submit(ctx context.Context, ownerID, caregiverID int64, rating int, comment string) (Review, error) {
	const op = "reviews.submit"

	if ownerID <= 0 {
		return Review{}, apperr.New(apperr.ErrUnauthorized, op, "unauthorized")
	}
	if rating < MinRating || rating > MaxRating {
		return Review{}, apperr.New(apperr.ErrInvalidArgument, op,
			fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating))
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLen {
		return Review{}, apperr.New(apperr.ErrInvalidArgument, op, "comment too long")
	}
	if err := s.ensureCaregiver(ctx, op, caregiverID); err != nil {
		return Review{}, err
	}

	return s.repo.Create(ctx, Review{
		OwnerID:     ownerID,
		CaregiverID: caregiverID,
		Rating:      rating,
		Comment:     comment,
		CreatedAt:   s.now().UTC(),
	})
}

// List devuelve las reviews del cuidador; vacío no es error.
// Cuidador inexistente => NotFound, para distinguirlo de "sin reviews".
func (s *Service) List(ctx context.Context, caregiverID int64) ([]Review, error) {
	const op = "reviews.list"

	if err := s.ensureCaregiver(ctx, op, caregiverID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListByCaregiver(ctx, caregiverID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Review{}
	}
	return items, nil
}

func (s *Service) ensureCaregiver(ctx context.Context, op string, id int64) error {
	if _, err := s.caregivers.GetByID(ctx, id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.New(apperr.ErrNotFound, op, "caregiver not found")
		}
		return err
	}
	return nil
}
