package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/contact-service/internal/validation"
)

var ErrOwnerNotFound = errors.New("contact owner not found")

type Repository interface {
	Create(ctx context.Context, c *Contact) (*Contact, error)
	ListByUserID(ctx context.Context, userID int64) ([]Contact, error)
}

type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	db DB
}

func NewRepository(db DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, c *Contact) (*Contact, error) {
	query := `
		INSERT INTO contacts (name, phone_number, address, email, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	created := *c
	err := r.db.QueryRow(ctx, query, c.Name, c.PhoneNumber, c.Address, c.Email, c.UserID).Scan(&created.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ForeignKeyViolation:
				return nil, ErrOwnerNotFound
			case pgerrcode.StringDataRightTruncationDataException:
				return nil, &validation.Error{Field: "contact", Message: "value is too long"}
			}
		}
		log.Error().Err(err).Int64("user_id", c.UserID).Msg("repository: failed to insert contact")
		return nil, fmt.Errorf("repository: failed to insert contact: %w", err)
	}

	return &created, nil
}

// ListByUserID returns the owner's contacts in storage order. The slice is
// empty, not nil, when there are none.
func (r *postgresRepository) ListByUserID(ctx context.Context, userID int64) ([]Contact, error) {
	query := `
		SELECT id, name, phone_number, address, email, user_id
		FROM contacts
		WHERE user_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query contacts for user %d: %w", userID, err)
	}

	contacts, err := pgx.CollectRows(rows, pgx.RowToStructByName[Contact])
	if err != nil {
		return nil, fmt.Errorf("repository: failed to scan contacts for user %d: %w", userID, err)
	}
	if contacts == nil {
		contacts = []Contact{}
	}

	return contacts, nil
}
