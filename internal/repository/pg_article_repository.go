package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/newsroom/news-api/internal/domain"
)

// Compile-time interface verification.
var _ ArticleRepository = (*PgArticleRepository)(nil)

// PgArticleRepository is a PostgreSQL implementation of ArticleRepository.
type PgArticleRepository struct {
	db DBTX
}

// NewPgArticleRepository creates a new PostgreSQL article repository.
func NewPgArticleRepository(db DBTX) *PgArticleRepository {
	return &PgArticleRepository{db: db}
}

// List runs the listing query and paginates the full result in memory so that
// TotalCount comes from the same round trip.
func (r *PgArticleRepository) List(ctx context.Context, filter ArticleFilter, page Page) (*domain.ArticleList, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	query, args := filter.BuildListQuery()
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "list articles", "article", "")
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(
			&a.Author, &a.Title, &a.ArticleID, &a.Topic, &a.CreatedAt,
			&a.Votes, &a.ArticleImgURL, &a.CommentCount,
		); err != nil {
			return nil, translateError(err, "scan article", "article", "")
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "iterate articles", "article", "")
	}

	if len(articles) == 0 && filter.HasTopic() {
		return nil, domain.NewNotFoundErrorWithMessage("article", filter.Topic, domain.MsgNoArticlesForQuery)
	}

	return &domain.ArticleList{
		Articles:   Paginate(articles, page),
		TotalCount: len(articles),
	}, nil
}

// GetByID retrieves one article with its comment count.
func (r *PgArticleRepository) GetByID(ctx context.Context, id int32) (*domain.Article, error) {
	query := `
		SELECT a.article_id, a.title, a.topic, a.author, a.body, a.created_at, a.votes, a.article_img_url,
			COALESCE(COUNT(c.comment_id), 0) AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id`

	a, err := scanArticle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, articleError(err, "get article", id)
	}
	return a, nil
}

// Create inserts an article and returns it with its generated fields.
func (r *PgArticleRepository) Create(ctx context.Context, article domain.NewArticle) (*domain.Article, error) {
	article.Normalize()

	query := `
		INSERT INTO articles (author, title, body, topic, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url,
			0::BIGINT AS comment_count`

	a, err := scanArticle(r.db.QueryRow(ctx, query,
		article.Author, article.Title, article.Body, article.Topic, article.ArticleImgURL,
	))
	if err != nil {
		return nil, translateError(err, "create article", "article", "")
	}
	return a, nil
}

// UpdateVotes applies inc atomically and returns the updated article.
func (r *PgArticleRepository) UpdateVotes(ctx context.Context, id int32, inc int32) (*domain.Article, error) {
	if inc == 0 {
		return nil, domain.NewValidationError("inc_votes", domain.MsgInvalidVotes)
	}

	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url,
			(SELECT COUNT(*) FROM comments c WHERE c.article_id = articles.article_id) AS comment_count`

	a, err := scanArticle(r.db.QueryRow(ctx, query, inc, id))
	if err != nil {
		return nil, articleError(err, "update article votes", id)
	}
	return a, nil
}

// Delete removes an article by ID.
func (r *PgArticleRepository) Delete(ctx context.Context, id int32) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE article_id = $1`, id)
	if err != nil {
		return translateError(err, "delete article", "article", strconv.Itoa(int(id)))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundErrorWithMessage("article", strconv.Itoa(int(id)), domain.MsgArticleNotFound)
	}
	return nil
}

// scanArticle scans a full article row including body and comment count.
func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	if err := row.Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.CreatedAt,
		&a.Votes, &a.ArticleImgURL, &a.CommentCount,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// articleError maps a missing row to the article not-found message.
func articleError(err error, op string, id int32) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundErrorWithMessage("article", strconv.Itoa(int(id)), domain.MsgArticleNotFound)
	}
	return translateError(err, op, "article", strconv.Itoa(int(id)))
}
