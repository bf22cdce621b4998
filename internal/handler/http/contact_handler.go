package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/contact-service/internal/contact"
	"github.com/vasiliy-maslov/contact-service/internal/user"
	"github.com/vasiliy-maslov/contact-service/internal/validation"
)

type CreateContactRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,phone"`
	Address     *string `json:"address" validate:"omitempty,max=512"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

type ContactResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	Email       *string `json:"email"`
	UserID      int64   `json:"user_id"`
}

type ContactHandler struct {
	service       contact.Service
	authenticator *Authenticator
	validate      *validator.Validate
}

func NewContactHandler(service contact.Service, authenticator *Authenticator) *ContactHandler {
	return &ContactHandler{
		service:       service,
		authenticator: authenticator,
		validate:      validation.New(),
	}
}

func (h *ContactHandler) RegisterRoutes(router chi.Router) {
	router.Post("/contacts", h.authenticator.Require(h.handleCreateContact))
	router.Get("/contacts", h.authenticator.Require(h.handleListContacts))
}

func toContactResponse(c contact.Contact) ContactResponse {
	return ContactResponse{
		ID:          c.ID,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		Email:       c.Email,
		UserID:      c.UserID,
	}
}

func (h *ContactHandler) handleCreateContact(w http.ResponseWriter, r *http.Request, owner *user.User) {
	var requestPayload CreateContactRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Int64("user_id", owner.ID).Msg("Failed to decode request body")
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request payload: %v", err))
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithServiceError(w, validation.FromValidator(err), "Internal validation error")
		return
	}

	created, err := h.service.Add(r.Context(), owner, contact.Input{
		Name:        requestPayload.Name,
		PhoneNumber: requestPayload.PhoneNumber,
		Address:     requestPayload.Address,
		Email:       requestPayload.Email,
	})
	if err != nil {
		respondWithServiceError(w, err, "Failed to create contact")
		return
	}

	respondWithJSON(w, http.StatusCreated, toContactResponse(*created))
}

func (h *ContactHandler) handleListContacts(w http.ResponseWriter, r *http.Request, owner *user.User) {
	contacts, err := h.service.List(r.Context(), owner)
	if err != nil {
		respondWithServiceError(w, err, "Failed to list contacts")
		return
	}

	responsePayload := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		responsePayload = append(responsePayload, toContactResponse(c))
	}

	respondWithJSON(w, http.StatusAccepted, responsePayload)
}
