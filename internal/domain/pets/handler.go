package pets

import (
	"net/http"
	"time"

	"petcare-marketplace/internal/middleware"
	"petcare-marketplace/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// Alta administrativa (sin tope)
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		// Adopción (con tope por dueño)
		pr.Post("/adopt", adoptPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
	})

	r.Get("/me/pets", listMyPetsHandler(svc))
}

type createPetRequest struct {
	OwnerID int64  `json:"owner_id"`
	Name    string `json:"name"`
	PetType string `json:"pet_type"`
}

type adoptPetRequest struct {
	Name    string `json:"name"`
	PetType string `json:"pet_type"`
}

type petResponse struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Name      string    `json:"name"`
	PetType   string    `json:"pet_type"`
	CreatedAt time.Time `json:"created_at"`
}

// createPetHandler godoc
// @Summary Crear mascota (administrativo)
// @Description Alta directa para un dueño existente. No aplica el tope de adopción.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody "user not found"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.UserID(r.Context()); err != nil {
			respond.Error(w, err)
			return
		}

		var req createPetRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			OwnerID: req.OwnerID,
			Name:    req.Name,
			Type:    req.PetType,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// adoptPetHandler godoc
// @Summary Adoptar mascota
// @Description El dueño sale del token. Máximo 2 mascotas por dueño.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body adoptPetRequest true "Mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} respond.ErrorBody "limit exceeded / invalid"
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody "user not found"
// @Router /pets/adopt [post]
func adoptPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := middleware.UserID(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		var req adoptPetRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		p, err := svc.Adopt(r.Context(), uid, req.Name, req.PetType)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar todas las mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetResponses(items))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} respond.ErrorBody
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := respond.ParseID(chi.URLParam(r, "petID"), "petID")
		if err != nil {
			respond.Error(w, err)
			return
		}

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetResponse(p))
	}
}

// listMyPetsHandler godoc
// @Summary Mis mascotas
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} petResponse
// @Failure 401 {object} respond.ErrorBody
// @Router /me/pets [get]
func listMyPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := middleware.UserID(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		items, err := svc.ListByOwner(r.Context(), uid)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetResponses(items))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		PetType:   p.Type,
		CreatedAt: p.CreatedAt,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}
