package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/contact-service/internal/auth"
	"github.com/vasiliy-maslov/contact-service/internal/user"
)

// AuthenticatedHandlerFunc receives the user the bearer token resolved to.
type AuthenticatedHandlerFunc func(w http.ResponseWriter, r *http.Request, u *user.User)

type Authenticator struct {
	service auth.Service
}

func NewAuthenticator(service auth.Service) *Authenticator {
	return &Authenticator{service: service}
}

// Require resolves the bearer token before next runs. The request is answered
// with 401 and next is never called when the token is missing or unknown.
func (a *Authenticator) Require(next AuthenticatedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			respondWithError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		u, err := a.service.ResolveIdentity(r.Context(), token)
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidToken) {
				log.Error().Err(err).Msg("Failed to resolve bearer token")
				respondWithError(w, http.StatusInternalServerError, "Failed to authenticate request")
				return
			}
			w.Header().Set("WWW-Authenticate", "Bearer")
			respondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next(w, r, u)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			event := log.Info()
			if status >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("HTTP request")
		}()

		next.ServeHTTP(ww, r)
	})
}
