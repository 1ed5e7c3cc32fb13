package repository

import (
	"context"

	"github.com/newsroom/news-api/internal/domain"
)

// UserRepository provides read access to users.
type UserRepository interface {
	// List returns every user.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername returns a NotFoundError carrying domain.MsgUserNotFound when absent.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
