package reviews

import (
	"net/http"
	"time"

	"petcare-marketplace/internal/middleware"
	"petcare-marketplace/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/caregivers/{caregiverID}/reviews", func(rr chi.Router) {
		rr.Post("/", submitReviewHandler(svc))
		rr.Get("/", listReviewsHandler(svc))
	})
}

type submitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type reviewResponse struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	CaregiverID int64     `json:"caregiver_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

// submitReviewHandler godoc
// @Summary Calificar cuidador
// @Description El autor sale del token. rating entre 1 y 5.
// @Tags reviews
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param caregiverID path int true "ID del cuidador"
// @Param payload body submitReviewRequest true "Review"
// @Success 201 {object} reviewResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /caregivers/{caregiverID}/reviews [post]
func submitReviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := middleware.UserID(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		caregiverID, err := respond.ParseID(chi.URLParam(r, "caregiverID"), "caregiverID")
		if err != nil {
			respond.Error(w, err)
			return
		}

		var req submitReviewRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		rv, err := svc.Submit(r.Context(), uid, caregiverID, req.Rating, req.Comment)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toReviewResponse(rv))
	}
}

// listReviewsHandler godoc
// @Summary Reviews de un cuidador
// @Tags reviews
// @Produce json
// @Param caregiverID path int true "ID del cuidador"
// @Success 200 {array} reviewResponse
// @Failure 404 {object} respond.ErrorBody
// @Router /caregivers/{caregiverID}/reviews [get]
func listReviewsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caregiverID, err := respond.ParseID(chi.URLParam(r, "caregiverID"), "caregiverID")
		if err != nil {
			respond.Error(w, err)
			return
		}

		items, err := svc.List(r.Context(), caregiverID)
		if err != nil {
			respond.Error(w, err)
			return
		}
		out := make([]reviewResponse, 0, len(items))
		for _, rv := range items {
			out = append(out, toReviewResponse(rv))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toReviewResponse(rv Review) reviewResponse {
	return reviewResponse{
		ID:          rv.ID,
		OwnerID:     rv.OwnerID,
		CaregiverID: rv.CaregiverID,
		Rating:      rv.Rating,
		Comment:     rv.Comment,
		CreatedAt:   rv.CreatedAt,
	}
}
