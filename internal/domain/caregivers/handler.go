package caregivers

import (
	"net/http"
	"time"

	"petcare-marketplace/internal/middleware"
	"petcare-marketplace/internal/platform/apperr"
	"petcare-marketplace/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /caregivers. Las reviews cuelgan de /caregivers/{caregiverID}/reviews
// y se registran desde su propio paquete.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/caregivers", registerCaregiverHandler(svc))
	r.Get("/caregivers", listCaregiversHandler(svc))
	r.Get("/caregivers/{caregiverID}", getCaregiverHandler(svc))
	r.Patch("/caregivers/{caregiverID}/active", setActiveHandler(svc))
}

type registerCaregiverRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	PetTypes []string `json:"pet_types"`
}

var errIsActiveRequired = apperr.New(apperr.ErrInvalidArgument, "caregivers.set_active", "is_active required")

type setActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

type caregiverResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	PetTypes  []string  `json:"pet_types"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// registerCaregiverHandler godoc
// @Summary Registrar cuidador
// @Tags caregivers
// @Accept json
// @Produce json
// @Param payload body registerCaregiverRequest true "Cuidador"
// @Success 201 {object} caregiverResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 409 {object} respond.ErrorBody "username already registered"
// @Router /caregivers [post]
func registerCaregiverHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerCaregiverRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		c, err := svc.Register(r.Context(), RegisterInput{
			Username: req.Username,
			Password: req.Password,
			PetTypes: req.PetTypes,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toCaregiverResponse(c))
	}
}

// listCaregiversHandler godoc
// @Summary Listar cuidadores
// @Tags caregivers
// @Produce json
// @Success 200 {array} caregiverResponse
// @Router /caregivers [get]
func listCaregiversHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}
		out := make([]caregiverResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCaregiverResponse(c))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getCaregiverHandler godoc
// @Summary Obtener cuidador
// @Tags caregivers
// @Produce json
// @Param caregiverID path int true "ID del cuidador"
// @Success 200 {object} caregiverResponse
// @Failure 404 {object} respond.ErrorBody
// @Router /caregivers/{caregiverID} [get]
func getCaregiverHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := respond.ParseID(chi.URLParam(r, "caregiverID"), "caregiverID")
		if err != nil {
			respond.Error(w, err)
			return
		}

		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toCaregiverResponse(c))
	}
}

// setActiveHandler godoc
// @Summary Cambiar disponibilidad
// @Description Un cuidador inactivo no recibe reservas nuevas.
// @Tags caregivers
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param caregiverID path int true "ID del cuidador"
// @Param payload body setActiveRequest true "Disponibilidad"
// @Success 200 {object} caregiverResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /caregivers/{caregiverID}/active [patch]
func setActiveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.UserID(r.Context()); err != nil {
			respond.Error(w, err)
			return
		}

		id, err := respond.ParseID(chi.URLParam(r, "caregiverID"), "caregiverID")
		if err != nil {
			respond.Error(w, err)
			return
		}

		var req setActiveRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, err)
			return
		}
		if req.IsActive == nil {
			respond.Error(w, errIsActiveRequired)
			return
		}

		c, err := svc.SetActive(r.Context(), id, *req.IsActive)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toCaregiverResponse(c))
	}
}

func toCaregiverResponse(c Caregiver) caregiverResponse {
	types := make([]string, len(c.PetTypes))
	copy(types, c.PetTypes)
	return caregiverResponse{
		ID:        c.ID,
		Username:  c.Username,
		PetTypes:  types,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}
