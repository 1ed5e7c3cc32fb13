package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/newsroom/news-api/internal/domain"
)

// Compile-time interface verification.
var _ CommentRepository = (*PgCommentRepository)(nil)

// PgCommentRepository is a PostgreSQL implementation of CommentRepository.
type PgCommentRepository struct {
	db DBTX
}

// NewPgCommentRepository creates a new PostgreSQL comment repository.
func NewPgCommentRepository(db DBTX) *PgCommentRepository {
	return &PgCommentRepository{db: db}
}

// ListByArticle returns a page of comments ordered by created_at descending.
func (r *PgCommentRepository) ListByArticle(ctx context.Context, articleID int32, page Page) ([]domain.Comment, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT comment_id, votes, created_at, author, body, article_id
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC`

	rows, err := r.db.Query(ctx, query, articleID)
	if err != nil {
		return nil, translateError(err, "list comments", "comment", "")
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.CommentID, &c.Votes, &c.CreatedAt, &c.Author, &c.Body, &c.ArticleID); err != nil {
			return nil, translateError(err, "scan comment", "comment", "")
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "iterate comments", "comment", "")
	}

	if len(comments) == 0 {
		return nil, domain.NewNotFoundErrorWithMessage("comment", strconv.Itoa(int(articleID)), domain.MsgCommentsNotFound)
	}

	return Paginate(comments, page), nil
}

// Create inserts a comment authored by comment.Username.
func (r *PgCommentRepository) Create(ctx context.Context, comment domain.NewComment) (*domain.Comment, error) {
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, votes, created_at, author, body, article_id`

	c, err := scanComment(r.db.QueryRow(ctx, query, comment.ArticleID, comment.Username, comment.Body))
	if err != nil {
		return nil, translateError(err, "create comment", "comment", "")
	}
	return c, nil
}

// UpdateVotes applies inc atomically and returns the updated comment.
func (r *PgCommentRepository) UpdateVotes(ctx context.Context, id int32, inc int32) (*domain.Comment, error) {
	if inc == 0 {
		return nil, domain.NewValidationError("inc_votes", domain.MsgInvalidVotes)
	}

	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, votes, created_at, author, body, article_id`

	c, err := scanComment(r.db.QueryRow(ctx, query, inc, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundErrorWithMessage("comment", strconv.Itoa(int(id)), domain.MsgCommentNotFound)
		}
		return nil, translateError(err, "update comment votes", "comment", strconv.Itoa(int(id)))
	}
	return c, nil
}

// Delete removes a comment by ID.
func (r *PgCommentRepository) Delete(ctx context.Context, id int32) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return translateError(err, "delete comment", "comment", strconv.Itoa(int(id)))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundErrorWithMessage("comment", strconv.Itoa(int(id)), domain.MsgCommentNotFound)
	}
	return nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.CommentID, &c.Votes, &c.CreatedAt, &c.Author, &c.Body, &c.ArticleID); err != nil {
		return nil, err
	}
	return &c, nil
}
