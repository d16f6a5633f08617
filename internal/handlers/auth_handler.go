package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyloop/backend/internal/models"
	"github.com/studyloop/backend/libs/handlers"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Register validates the credentials and creates a user.
	//
	// "req" parameter contains username and password.
	//
	// If credentials are missing, the username is taken, or some other error occurs, the error will be returned.
	Register(ctx context.Context, req *models.CredentialsRequest) error
	// Method Login checks the credentials and returns a signed token.
	//
	// If user does not exist, models.ErrUserNotFound is returned; if the password does not match, models.ErrInvalidCredentials.
	// In both cases the token is an empty string.
	Login(ctx context.Context, req *models.CredentialsRequest) (string, error)
}

// AuthHandler handles registration and login requests
type AuthHandler struct {
	handlers.BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: handlers.BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

// Register handles POST /register
// @Summary Register a new user
// @Description Create an account with username and password. No token is returned; log in afterwards.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.CredentialsRequest true "Credentials"
// @Success 200 {object} map[string]string "Usuário criado com sucesso"
// @Failure 400 {object} map[string]string "Missing credentials or username taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := decodeBody(&h.BaseHandler, r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := h.authService.Register(r.Context(), &req); err != nil {
		respondServiceError(&h.BaseHandler, w, err, "Erro ao registrar usuário")
		return
	}

	h.RespondMessage(w, http.StatusOK, "Usuário criado com sucesso")
}

// Login handles POST /login
// @Summary Log in
// @Description Check credentials and return a bearer token carrying the user id and username
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.CredentialsRequest true "Credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]string "Unknown user or wrong password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := decodeBody(&h.BaseHandler, r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "Erro no login")
		return
	}

	h.RespondJSON(w, http.StatusOK, models.TokenResponse{Token: token})
}
