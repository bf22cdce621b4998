package contact

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/contact-service/internal/user"
	"github.com/vasiliy-maslov/contact-service/internal/validation"
)

// Input carries the client-supplied fields of a new contact.
type Input struct {
	Name        string
	PhoneNumber *string
	Address     *string
	Email       *string
}

type Service interface {
	Add(ctx context.Context, owner *user.User, in Input) (*Contact, error)
	List(ctx context.Context, owner *user.User) ([]Contact, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Add validates phone and email and stores the contact under owner. Nothing is
// written when validation fails.
func (s *service) Add(ctx context.Context, owner *user.User, in Input) (*Contact, error) {
	var errs validation.Errors

	if in.Name == "" {
		errs = append(errs, &validation.Error{Field: "name", Message: "field is required"})
	}
	phone, err := validation.ValidatePhone(in.PhoneNumber)
	if fieldErr, ok := err.(*validation.Error); ok {
		errs = append(errs, fieldErr)
	}
	email, err := validation.ValidateEmail(in.Email)
	if fieldErr, ok := err.(*validation.Error); ok {
		errs = append(errs, fieldErr)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	created, err := s.repo.Create(ctx, &Contact{
		Name:        in.Name,
		PhoneNumber: phone,
		Address:     in.Address,
		Email:       email,
		UserID:      owner.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to add contact: %w", err)
	}

	log.Debug().Int64("user_id", owner.ID).Int64("contact_id", created.ID).Msg("contact added")

	return created, nil
}

func (s *service) List(ctx context.Context, owner *user.User) ([]Contact, error) {
	contacts, err := s.repo.ListByUserID(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list contacts: %w", err)
	}

	return contacts, nil
}
