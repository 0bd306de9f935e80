package expiry

import (
	"net/http"
	"time"

	"petcare-marketplace/internal/middleware"
	"petcare-marketplace/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, rec *Reconciler) {
	r.Post("/bookings/expire", runSweepHandler(rec))
}

type sweepResponse struct {
	RunID   string    `json:"run_id"`
	Scanned int       `json:"scanned"`
	Expired int       `json:"expired"`
	Skipped int       `json:"skipped"`
	RanAt   time.Time `json:"ran_at"`
}

// runSweepHandler godoc
// @Summary Expirar reservas ahora
// @Description Corre un barrido de expiración a demanda. Es idempotente.
// @Tags bookings
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} sweepResponse
// @Failure 401 {object} respond.ErrorBody
// @Router /bookings/expire [post]
func runSweepHandler(rec *Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.UserID(r.Context()); err != nil {
			respond.Error(w, err)
			return
		}

		res, err := rec.RunOnce(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, sweepResponse{
			RunID:   res.RunID,
			Scanned: res.Scanned,
			Expired: res.Expired,
			Skipped: res.Skipped,
			RanAt:   res.At,
		})
	}
}
