package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/newsroom/news-api/internal/database"
)

const truncateAll = `TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`

const (
	insertTopic   = `INSERT INTO topics (slug, description, img_url) VALUES ($1, $2, $3)`
	insertUser    = `INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`
	insertArticle = `INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	insertComment = `INSERT INTO comments (article_id, body, votes, author, created_at)
		VALUES ($1, $2, $3, $4, $5)`
)

// Seeder replaces the contents of all tables with a Dataset.
type Seeder struct {
	db     *database.DB
	logger zerolog.Logger
}

// NewSeeder creates a Seeder over an open database.
func NewSeeder(db *database.DB, logger zerolog.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed truncates every table and inserts ds in one transaction. The schema must
// already be migrated.
func (s *Seeder) Seed(ctx context.Context, ds Dataset) error {
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("invalid dataset: %w", err)
	}

	err := s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, truncateAll); err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}
		return sendBatch(ctx, tx, buildBatch(ds))
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Int("topics", len(ds.Topics)).
		Int("users", len(ds.Users)).
		Int("articles", len(ds.Articles)).
		Int("comments", len(ds.Comments)).
		Msg("database seeded")
	return nil
}

// buildBatch queues inserts in dependency order. Articles are queued in slice
// order so their serial ids match the positions CommentRow.ArticleID refers to.
func buildBatch(ds Dataset) *pgx.Batch {
	b := &pgx.Batch{}
	for _, t := range ds.Topics {
		b.Queue(insertTopic, t.Slug, t.Description, t.ImgURL)
	}
	for _, u := range ds.Users {
		b.Queue(insertUser, u.Username, u.Name, u.AvatarURL)
	}
	for _, a := range ds.Articles {
		b.Queue(insertArticle, a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, a.Votes, a.ArticleImgURL)
	}
	for _, c := range ds.Comments {
		b.Queue(insertComment, c.ArticleID, c.Body, c.Votes, c.Author, c.CreatedAt)
	}
	return b
}

func sendBatch(ctx context.Context, tx pgx.Tx, b *pgx.Batch) error {
	results := tx.SendBatch(ctx, b)
	for i := 0; i < b.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}
	return results.Close()
}
