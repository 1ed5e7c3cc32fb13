package repository

import (
	"context"

	"github.com/newsroom/news-api/internal/domain"
)

// CommentRepository handles comment persistence.
type CommentRepository interface {
	// ListByArticle returns one page of an article's comments, newest first.
	// Returns a NotFoundError carrying domain.MsgCommentsNotFound when the
	// article has no comments at all.
	ListByArticle(ctx context.Context, articleID int32, page Page) ([]domain.Comment, error)

	// Create posts a comment. Unknown users or articles surface as
	// domain.ConstraintViolationError.
	Create(ctx context.Context, comment domain.NewComment) (*domain.Comment, error)

	// UpdateVotes adds inc to the comment's votes in a single statement.
	UpdateVotes(ctx context.Context, id int32, inc int32) (*domain.Comment, error)

	// Delete removes a comment by ID.
	Delete(ctx context.Context, id int32) error
}
