package user

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/contact-service/internal/validation"
)

type Service interface {
	Register(ctx context.Context, username, password string) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register validates the password and stores a new account without a token.
// Username uniqueness is not checked.
func (s *service) Register(ctx context.Context, username, password string) (*User, error) {
	if _, err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to hash password")
		return nil, fmt.Errorf("service: %w", err)
	}

	created, err := s.repo.Create(ctx, username, hash)
	if err != nil {
		return nil, fmt.Errorf("service: failed to register user: %w", err)
	}

	log.Info().Int64("user_id", created.ID).Msg("user registered")

	return created, nil
}
