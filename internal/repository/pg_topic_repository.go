package repository

import (
	"context"

	"github.com/newsroom/news-api/internal/domain"
)

var _ TopicRepository = (*PgTopicRepository)(nil)

// PgTopicRepository is a PostgreSQL implementation of TopicRepository.
type PgTopicRepository struct {
	db DBTX
}

// NewPgTopicRepository creates a new PostgreSQL topic repository.
func NewPgTopicRepository(db DBTX) *PgTopicRepository {
	return &PgTopicRepository{db: db}
}

// List returns all topics ordered by slug.
func (r *PgTopicRepository) List(ctx context.Context) ([]domain.Topic, error) {
	rows, err := r.db.Query(ctx, `SELECT slug, description, img_url FROM topics ORDER BY slug`)
	if err != nil {
		return nil, translateError(err, "list topics", "topic", "")
	}
	defer rows.Close()

	topics := make([]domain.Topic, 0)
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.Slug, &t.Description, &t.ImgURL); err != nil {
			return nil, translateError(err, "scan topic", "topic", "")
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "iterate topics", "topic", "")
	}
	return topics, nil
}

// Create inserts a topic; a missing image is stored as an empty string.
func (r *PgTopicRepository) Create(ctx context.Context, topic domain.Topic) (*domain.Topic, error) {
	query := `
		INSERT INTO topics (slug, description, img_url)
		VALUES ($1, $2, $3)
		RETURNING slug, description, img_url`

	var t domain.Topic
	err := r.db.QueryRow(ctx, query, topic.Slug, topic.Description, topic.ImgURL).
		Scan(&t.Slug, &t.Description, &t.ImgURL)
	if err != nil {
		return nil, translateError(err, "create topic", "Topic", topic.Slug)
	}
	return &t, nil
}
