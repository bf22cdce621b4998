// Package auth exchanges credentials for opaque bearer tokens and resolves
// those tokens back to users.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/contact-service/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// dummyHash is compared against when no account matches the username, so a
// miss costs the same as a wrong password.
var dummyHash, _ = user.HashPassword("dummy-password")

type Service interface {
	IssueToken(ctx context.Context, username, password string) (Token, error)
	ResolveIdentity(ctx context.Context, token string) (*user.User, error)
}

type service struct {
	users    user.Repository
	newToken func() (string, error)
}

func NewService(users user.Repository) Service {
	return &service{users: users, newToken: NewOpaqueToken}
}

// IssueToken overwrites the user's previous token, which stops resolving at
// once. Concurrent exchanges for one user race and the last write wins.
func (s *service) IssueToken(ctx context.Context, username, password string) (Token, error) {
	candidates, err := s.users.ListByUsername(ctx, username)
	if err != nil {
		return Token{}, fmt.Errorf("auth: failed to look up user: %w", err)
	}

	matched := findByPassword(candidates, password)
	if matched == nil {
		log.Info().Str("username", username).Msg("auth: credential exchange rejected")
		return Token{}, ErrInvalidCredentials
	}

	token, err := s.newToken()
	if err != nil {
		return Token{}, fmt.Errorf("auth: %w", err)
	}

	if err := s.users.UpdateToken(ctx, matched.ID, token); err != nil {
		return Token{}, fmt.Errorf("auth: failed to store token: %w", err)
	}

	return Token{AccessToken: token, TokenType: TokenTypeBearer}, nil
}

func (s *service) ResolveIdentity(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	u, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("auth: failed to resolve token: %w", err)
	}

	return u, nil
}

func findByPassword(candidates []user.User, password string) *user.User {
	if len(candidates) == 0 {
		_ = user.CheckPassword(dummyHash, password)
		return nil
	}

	for i := range candidates {
		if user.CheckPassword(candidates[i].PasswordHash, password) {
			return &candidates[i]
		}
	}
	return nil
}
