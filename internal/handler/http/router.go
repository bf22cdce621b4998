package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vasiliy-maslov/contact-service/internal/auth"
	"github.com/vasiliy-maslov/contact-service/internal/contact"
	"github.com/vasiliy-maslov/contact-service/internal/user"
)

// NewRouter wires every route. Paths answer with and without a trailing slash.
func NewRouter(users user.Service, authService auth.Service, contacts contact.Service) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)

	NewUserHandler(users, authService).RegisterRoutes(router)
	NewContactHandler(contacts, NewAuthenticator(authService)).RegisterRoutes(router)

	return router
}
