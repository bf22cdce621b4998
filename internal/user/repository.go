package user

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

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, username, passwordHash string) (*User, error)
	GetByToken(ctx context.Context, token string) (*User, error)
	ListByUsername(ctx context.Context, username string) ([]User, error)
	UpdateToken(ctx context.Context, id int64, token string) error
}

// DB is the subset of *pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	db DB
}

func NewRepository(db DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, username, passwordHash string) (*User, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`

	u := User{Username: username, PasswordHash: passwordHash}
	err := r.db.QueryRow(ctx, query, username, passwordHash).Scan(&u.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.StringDataRightTruncationDataException {
			return nil, &validation.Error{Field: "username", Message: "username is too long"}
		}
		log.Error().Err(err).Str("username", username).Msg("repository: failed to insert user")
		return nil, fmt.Errorf("repository: failed to insert user: %w", err)
	}

	return &u, nil
}

func (r *repository) GetByToken(ctx context.Context, token string) (*User, error) {
	query := `
		SELECT id, username, password_hash, token
		FROM users
		WHERE token = $1
	`

	var u User
	err := r.db.QueryRow(ctx, query, token).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by token: %w", err)
	}

	return &u, nil
}

// ListByUsername returns every account registered under username, oldest first.
func (r *repository) ListByUsername(ctx context.Context, username string) ([]User, error) {
	query := `
		SELECT id, username, password_hash, token
		FROM users
		WHERE username = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query users by username: %w", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[User])
	if err != nil {
		return nil, fmt.Errorf("repository: failed to scan users: %w", err)
	}

	return users, nil
}

func (r *repository) UpdateToken(ctx context.Context, id int64, token string) error {
	query := `
		UPDATE users
		SET token = $1
		WHERE id = $2
	`

	tag, err := r.db.Exec(ctx, query, token, id)
	if err != nil {
		return fmt.Errorf("repository: failed to update token for user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
