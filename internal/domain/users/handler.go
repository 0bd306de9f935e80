package users

import (
	"net/http"
	"time"

	"petcare-marketplace/internal/middleware"
	"petcare-marketplace/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/register", registerHandler(svc))
	r.Post("/login", loginHandler(svc))
	r.Get("/me", meHandler(svc))
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Tags users
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Usuario y contraseña"
// @Success 201 {object} userResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 409 {object} respond.ErrorBody "username already registered"
// @Router /register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		u, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toUserResponse(u))
	}
}

// loginHandler godoc
// @Summary Login
// @Description Devuelve un bearer token cuya identidad es el id numérico del usuario.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Usuario y contraseña"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} respond.ErrorBody
// @Router /login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		tok, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, tokenResponse{
			AccessToken: tok.AccessToken,
			TokenType:   tok.TokenType,
			ExpiresAt:   tok.ExpiresAt,
		})
	}
}

// meHandler godoc
// @Summary Usuario actual
// @Tags users
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} userResponse
// @Failure 401 {object} respond.ErrorBody
// @Router /me [get]
func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := middleware.UserID(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		u, err := svc.GetByID(r.Context(), uid)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username}
}
