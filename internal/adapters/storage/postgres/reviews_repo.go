package postgres

import (
	"context"
	"database/sql"

	"petcare-marketplace/internal/domain/reviews"
)

type ReviewsRepo struct {
	db *sql.DB
}

func NewReviewsRepo(db *sql.DB) *ReviewsRepo {
	return &ReviewsRepo{db: db}
}

func (r *ReviewsRepo) Create(ctx context.Context, rv reviews.Review) (reviews.Review, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (owner_id, caregiver_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, rv.OwnerID, rv.CaregiverID, rv.Rating, rv.Comment, rv.CreatedAt).Scan(&rv.ID)
	if err != nil {
		return reviews.Review{}, mapErr("reviews.create", err)
	}
	return rv, nil
}

func (r *ReviewsRepo) ListByCaregiver(ctx context.Context, caregiverID int64) ([]reviews.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, caregiver_id, rating, comment, created_at
		FROM reviews
		WHERE caregiver_id = $1
		ORDER BY created_at ASC, id ASC
	`, caregiverID)
	if err != nil {
		return nil, mapErr("reviews.list", err)
	}
	defer rows.Close()

	out := make([]reviews.Review, 0)
	for rows.Next() {
		var rv reviews.Review
		if err := rows.Scan(&rv.ID, &rv.OwnerID, &rv.CaregiverID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
