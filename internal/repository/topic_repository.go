package repository

import (
	"context"

	"github.com/newsroom/news-api/internal/domain"
)

// TopicRepository handles topic persistence.
type TopicRepository interface {
	// List returns every topic.
	List(ctx context.Context) ([]domain.Topic, error)

	// Create inserts a topic. A duplicate slug returns domain.AlreadyExistsError.
	Create(ctx context.Context, topic domain.Topic) (*domain.Topic, error)
}
