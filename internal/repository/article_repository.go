package repository

import (
	"context"

	"github.com/newsroom/news-api/internal/domain"
)

// ArticleRepository handles article persistence and the article listing query.
type ArticleRepository interface {
	// List returns one page of articles matching filter together with the total
	// number of matches. A topic filter that matches nothing returns a NotFoundError
	// carrying domain.MsgNoArticlesForQuery; an unfiltered empty table is not an error.
	List(ctx context.Context, filter ArticleFilter, page Page) (*domain.ArticleList, error)

	// GetByID retrieves one article including its body and comment count.
	// Returns a NotFoundError carrying domain.MsgArticleNotFound when absent.
	GetByID(ctx context.Context, id int32) (*domain.Article, error)

	// Create inserts an article. Unknown authors or topics surface as
	// domain.ConstraintViolationError.
	Create(ctx context.Context, article domain.NewArticle) (*domain.Article, error)

	// UpdateVotes adds inc to the article's votes in a single statement and returns
	// the updated article.
	UpdateVotes(ctx context.Context, id int32, inc int32) (*domain.Article, error)

	// Delete removes an article and, through the schema's cascade, its comments.
	Delete(ctx context.Context, id int32) error
}
