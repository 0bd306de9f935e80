package healthrecords

import (
	"net/http"
	"time"

	"petcare-marketplace/internal/middleware"
	"petcare-marketplace/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/health-record", func(hr chi.Router) {
		hr.Put("/", upsertHealthRecordHandler(svc))
		hr.Get("/", getHealthRecordHandler(svc))
	})
}

type upsertHealthRecordRequest struct {
	Veterinarian string   `json:"veterinarian"`
	Vaccinations []string `json:"vaccinations"`
	Allergies    []string `json:"allergies"`
	Notes        string   `json:"notes"`
	LastCheckup  string   `json:"last_checkup"`
	Source       Source   `json:"source"`
}

type healthRecordResponse struct {
	PetID        int64     `json:"pet_id"`
	Veterinarian string    `json:"veterinarian"`
	Vaccinations []string  `json:"vaccinations"`
	Allergies    []string  `json:"allergies"`
	Notes        string    `json:"notes"`
	LastCheckup  *string   `json:"last_checkup,omitempty"`
	Source       Source    `json:"source"`
	UpdatedBy    int64     `json:"updated_by"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// upsertHealthRecordHandler godoc
// @Summary Guardar ficha veterinaria
// @Description Crea o reemplaza la ficha de la mascota. Solo el dueño.
// @Tags health-records
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token"
// @Param petID path int true "ID de la mascota"
// @Param payload body upsertHealthRecordRequest true "Ficha; last_checkup en YYYY-MM-DD"
// @Success 200 {object} healthRecordResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 403 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody "pet not found"
// @Router /pets/{petID}/health-record [put]
func upsertHealthRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := middleware.UserID(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		petID, err := respond.ParseID(chi.URLParam(r, "petID"), "petID")
		if err != nil {
			respond.Error(w, err)
			return
		}

		var req upsertHealthRecordRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		rec, err := svc.Upsert(r.Context(), uid, petID, UpsertInput{
			Veterinarian: req.Veterinarian,
			Vaccinations: req.Vaccinations,
			Allergies:    req.Allergies,
			Notes:        req.Notes,
			LastCheckup:  req.LastCheckup,
			Source:       req.Source,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toHealthRecordResponse(rec))
	}
}

// getHealthRecordHandler godoc
// @Summary Ver ficha veterinaria
// @Tags health-records
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token"
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} healthRecordResponse
// @Failure 401 {object} respond.ErrorBody
// @Failure 403 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /pets/{petID}/health-record [get]
func getHealthRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := middleware.UserID(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		petID, err := respond.ParseID(chi.URLParam(r, "petID"), "petID")
		if err != nil {
			respond.Error(w, err)
			return
		}

		rec, err := svc.Get(r.Context(), uid, petID)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toHealthRecordResponse(rec))
	}
}

func toHealthRecordResponse(rec HealthRecord) healthRecordResponse {
	out := healthRecordResponse{
		PetID:        rec.PetID,
		Veterinarian: rec.Veterinarian,
		Vaccinations: rec.Vaccinations,
		Allergies:    rec.Allergies,
		Notes:        rec.Notes,
		Source:       rec.Source,
		UpdatedBy:    rec.UpdatedBy,
		UpdatedAt:    rec.UpdatedAt,
	}
	if out.Vaccinations == nil {
		out.Vaccinations = []string{}
	}
	if out.Allergies == nil {
		out.Allergies = []string{}
	}
	if rec.LastCheckup != nil {
		s := rec.LastCheckup.Format("2006-01-02")
		out.LastCheckup = &s
	}
	return out
}
