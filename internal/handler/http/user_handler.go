package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/contact-service/internal/auth"
	"github.com/vasiliy-maslov/contact-service/internal/user"
	"github.com/vasiliy-maslov/contact-service/internal/validation"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,password"`
}

// UserResponse echoes the submitted password; the stored value is a hash.
type UserResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Token    *string `json:"token"`
}

// TokenRequest mirrors the OAuth2 password grant form.
type TokenRequest struct {
	GrantType string `json:"grant_type" validate:"omitempty,eq=password"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type UserHandler struct {
	users    user.Service
	auth     auth.Service
	validate *validator.Validate
}

func NewUserHandler(users user.Service, authService auth.Service) *UserHandler {
	return &UserHandler{
		users:    users,
		auth:     authService,
		validate: validation.New(),
	}
}

func (h *UserHandler) RegisterRoutes(router chi.Router) {
	router.Post("/users", h.handleCreateUser)
	router.Post("/token", h.handleCreateToken)
}

func (h *UserHandler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var requestPayload CreateUserRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Msg("Failed to decode request body")
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request payload: %v", err))
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithServiceError(w, validation.FromValidator(err), "Internal validation error")
		return
	}

	createdUser, err := h.users.Register(r.Context(), requestPayload.Username, requestPayload.Password)
	if err != nil {
		respondWithServiceError(w, err, "Failed to create user")
		return
	}

	respondWithJSON(w, http.StatusCreated, UserResponse{
		ID:       createdUser.ID,
		Username: createdUser.Username,
		Password: requestPayload.Password,
		Token:    createdUser.Token,
	})
}

func (h *UserHandler) handleCreateToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Warn().Err(err).Msg("Failed to parse token form")
		respondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}

	requestPayload := TokenRequest{
		GrantType: r.PostForm.Get("grant_type"),
		Username:  r.PostForm.Get("username"),
		Password:  r.PostForm.Get("password"),
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithServiceError(w, validation.FromValidator(err), "Internal validation error")
		return
	}

	token, err := h.auth.IssueToken(r.Context(), requestPayload.Username, requestPayload.Password)
	if err != nil {
		respondWithServiceError(w, err, "Failed to issue token")
		return
	}

	respondWithJSON(w, http.StatusOK, token)
}
