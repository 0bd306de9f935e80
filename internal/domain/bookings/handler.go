package bookings

import (
	"net/http"
	"time"

	"petcare-marketplace/internal/middleware"
	"petcare-marketplace/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /bookings. El disparo manual de expiración
// (POST /bookings/expire) lo registra el paquete expiry.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/bookings", createBookingHandler(svc))
	r.Get("/bookings", listBookingsHandler(svc))
}

type createBookingRequest struct {
	PetID       int64  `json:"pet_id"`
	CaregiverID int64  `json:"caregiver_id"`
	Date        string `json:"date"`
	TimeFrom    string `json:"time_from"`
	TimeTo      string `json:"time_to"`
}

type bookingResponse struct {
	ID          int64     `json:"id"`
	PetID       int64     `json:"pet_id"`
	CaregiverID int64     `json:"caregiver_id"`
	Date        string    `json:"date"`
	TimeFrom    string    `json:"time_from"`
	TimeTo      string    `json:"time_to"`
	Status      string    `json:"status"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// createBookingHandler godoc
// @Summary Reservar cuidador
// @Description El cuidador debe estar activo y aceptar el tipo de la mascota.
// @Tags bookings
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body createBookingRequest true "Reserva"
// @Success 201 {object} bookingResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody "pet/caregiver not found"
// @Failure 409 {object} respond.ErrorBody "caregiver is not available"
// @Failure 422 {object} respond.ErrorBody "pet type not accepted"
// @Router /bookings [post]
func createBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := middleware.UserID(r.Context()); err != nil {
			respond.Error(w, err)
			return
		}

		var req createBookingRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			PetID:       req.PetID,
			CaregiverID: req.CaregiverID,
			Date:        req.Date,
			TimeFrom:    req.TimeFrom,
			TimeTo:      req.TimeTo,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toBookingResponse(b))
	}
}

// listBookingsHandler godoc
// @Summary Listar reservas
// @Description Todas las reservas, ordenadas por id, sin filtros.
// @Tags bookings
// @Produce json
// @Success 200 {array} bookingResponse
// @Router /bookings [get]
func listBookingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}
		out := make([]bookingResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBookingResponse(b))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toBookingResponse(b Booking) bookingResponse {
	return bookingResponse{
		ID:          b.ID,
		PetID:       b.PetID,
		CaregiverID: b.CaregiverID,
		Date:        b.Date,
		TimeFrom:    b.TimeFrom,
		TimeTo:      b.TimeTo,
		Status:      string(b.Status),
		IsActive:    b.IsActive(),
		CreatedAt:   b.CreatedAt,
	}
}
