package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/contact-service/internal/auth"
	"github.com/vasiliy-maslov/contact-service/internal/contact"
	"github.com/vasiliy-maslov/contact-service/internal/validation"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Error   string              `json:"error"`
	Details []*validation.Error `json:"details"`
}

// respondWithError writes {"error": message}.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON writes payload as JSON with the given status.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func respondWithValidationError(w http.ResponseWriter, err error) {
	var details []*validation.Error

	var errs validation.Errors
	var fieldErr *validation.Error
	switch {
	case errors.As(err, &errs):
		details = errs
	case errors.As(err, &fieldErr):
		details = []*validation.Error{fieldErr}
	}

	respondWithJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:   "Validation failed",
		Details: details,
	})
}

func isValidationError(err error) bool {
	var errs validation.Errors
	var fieldErr *validation.Error
	return errors.As(err, &errs) || errors.As(err, &fieldErr)
}

func mapErrorToStatusCode(err error) int {
	switch {
	case isValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusForbidden
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, contact.ErrOwnerNotFound):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondWithServiceError writes err with its mapped status. Validation
// failures carry per-field details; server errors hide the cause behind fallback.
func respondWithServiceError(w http.ResponseWriter, err error, fallback string) {
	statusCode := mapErrorToStatusCode(err)

	switch statusCode {
	case http.StatusUnprocessableEntity:
		respondWithValidationError(w, err)
	case http.StatusUnauthorized:
		w.Header().Set("WWW-Authenticate", "Bearer")
		respondWithError(w, statusCode, "Invalid token")
	case http.StatusForbidden:
		respondWithError(w, statusCode, "Incorrect username or password")
	default:
		log.Error().Err(err).Msg(fallback)
		respondWithError(w, statusCode, fallback)
	}
}
