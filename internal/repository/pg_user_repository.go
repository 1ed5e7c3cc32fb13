package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/newsroom/news-api/internal/domain"
)

var _ UserRepository = (*PgUserRepository)(nil)

// PgUserRepository is a PostgreSQL implementation of UserRepository.
type PgUserRepository struct {
	db DBTX
}

// NewPgUserRepository creates a new PostgreSQL user repository.
func NewPgUserRepository(db DBTX) *PgUserRepository {
	return &PgUserRepository{db: db}
}

// List returns all users ordered by username.
func (r *PgUserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT username, name, avatar_url FROM users ORDER BY username`)
	if err != nil {
		return nil, translateError(err, "list users", "user", "")
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, translateError(err, "scan user", "user", "")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "iterate users", "user", "")
	}
	return users, nil
}

// GetByUsername retrieves a single user.
func (r *PgUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `SELECT username, name, avatar_url FROM users WHERE username = $1`, username).
		Scan(&u.Username, &u.Name, &u.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundErrorWithMessage("user", username, domain.MsgUserNotFound)
		}
		return nil, translateError(err, "get user", "user", username)
	}
	return &u, nil
}
