package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsroom/news-api/internal/domain"
)

var (
	articleListColumns = []string{"author", "title", "article_id", "topic", "created_at", "votes", "article_img_url", "comment_count"}
	articleColumns     = []string{"article_id", "title", "topic", "author", "body", "created_at", "votes", "article_img_url", "comment_count"}
)

func listRows(n int, topic string) *pgxmock.Rows {
	rows := pgxmock.NewRows(articleListColumns)
	base := time.Date(2020, 11, 3, 9, 12, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		rows.AddRow("butter_bridge", "Article", int32(i), topic, base.Add(-time.Duration(i)*time.Hour), int32(i*10), "https://example.com/img.jpg", int64(i%3))
	}
	return rows
}

func TestPgArticleRepository_List(t *testing.T) {
	t.Run("paginates and reports total count", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`FROM articles a LEFT JOIN comments c ON c\.article_id = a\.article_id GROUP BY a\.article_id ORDER BY a\.created_at DESC, a\.article_id DESC`).
			WillReturnRows(listRows(13, "mitch"))

		list, err := repo.List(context.Background(), ArticleFilter{SortBy: "created_at", Order: "desc"}, Page{Limit: 5, Number: 3})
		require.NoError(t, err)
		assert.Equal(t, 13, list.TotalCount)
		require.Len(t, list.Articles, 3)
		assert.Equal(t, int32(11), list.Articles[0].ArticleID)
		assert.Equal(t, int32(13), list.Articles[2].ArticleID)
		assert.Empty(t, list.Articles[0].Body)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("binds topic and applies sort", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`WHERE a\.topic = \$1 GROUP BY a\.article_id ORDER BY a\.votes ASC, a\.article_id ASC`).
			WithArgs("cats").
			WillReturnRows(listRows(1, "cats"))

		list, err := repo.List(context.Background(), ArticleFilter{SortBy: "votes", Order: "asc", Topic: "cats"}, DefaultPageRequest())
		require.NoError(t, err)
		assert.Equal(t, 1, list.TotalCount)
		assert.Equal(t, "cats", list.Articles[0].Topic)
		assert.Equal(t, int64(1), list.Articles[0].CommentCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("topic with no matches is not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`WHERE a\.topic = \$1`).
			WithArgs("dogs").
			WillReturnRows(pgxmock.NewRows(articleListColumns))

		_, err = repo.List(context.Background(), ArticleFilter{SortBy: "created_at", Order: "desc", Topic: "dogs"}, DefaultPageRequest())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, domain.MsgNoArticlesForQuery, err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table without filter is not an error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`FROM articles a`).
			WillReturnRows(pgxmock.NewRows(articleListColumns))

		list, err := repo.List(context.Background(), ArticleFilter{SortBy: "created_at", Order: "desc"}, DefaultPageRequest())
		require.NoError(t, err)
		assert.Equal(t, 0, list.TotalCount)
		assert.NotNil(t, list.Articles)
		assert.Empty(t, list.Articles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects invalid filter before touching the store", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		_, err = repo.List(context.Background(), ArticleFilter{SortBy: "body", Order: "desc"}, DefaultPageRequest())
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))

		_, err = repo.List(context.Background(), ArticleFilter{SortBy: "votes", Order: "desc"}, Page{Limit: 0, Number: 1})
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`FROM articles a`).WillReturnError(errors.New("connection refused"))

		_, err = repo.List(context.Background(), ArticleFilter{SortBy: "created_at", Order: "desc"}, DefaultPageRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list articles")
		assert.False(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestPgArticleRepository_GetByID(t *testing.T) {
	t.Run("returns article with body and comment count", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)
		created := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)

		mock.ExpectQuery(`WHERE a\.article_id = \$1 GROUP BY a\.article_id`).
			WithArgs(int32(1)).
			WillReturnRows(pgxmock.NewRows(articleColumns).
				AddRow(int32(1), "Living in the shadow of a great man", "mitch", "butter_bridge", "I find this existence challenging", created, int32(100), "https://example.com/1.jpg", int64(11)))

		a, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int32(1), a.ArticleID)
		assert.Equal(t, "I find this existence challenging", a.Body)
		assert.Equal(t, int32(100), a.Votes)
		assert.Equal(t, int64(11), a.CommentCount)
		assert.Equal(t, created, a.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`WHERE a\.article_id = \$1`).
			WithArgs(int32(999)).
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.GetByID(context.Background(), 999)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, domain.MsgArticleNotFound, err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgArticleRepository_Create(t *testing.T) {
	t.Run("applies default image and returns generated fields", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)
		now := time.Now().UTC()

		mock.ExpectQuery(`INSERT INTO articles \(author, title, body, topic, article_img_url\)`).
			WithArgs("icellusedkars", "New", "Body", "cats", domain.DefaultArticleImgURL).
			WillReturnRows(pgxmock.NewRows(articleColumns).
				AddRow(int32(14), "New", "cats", "icellusedkars", "Body", now, int32(0), domain.DefaultArticleImgURL, int64(0)))

		a, err := repo.Create(context.Background(), domain.NewArticle{
			Author: "icellusedkars", Title: "New", Body: "Body", Topic: "cats",
		})
		require.NoError(t, err)
		assert.Equal(t, int32(14), a.ArticleID)
		assert.Equal(t, int32(0), a.Votes)
		assert.Equal(t, int64(0), a.CommentCount)
		assert.Equal(t, domain.DefaultArticleImgURL, a.ArticleImgURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown author", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`INSERT INTO articles`).
			WithArgs("ghost", "New", "Body", "cats", "https://example.com/x.png").
			WillReturnError(&pgconn.PgError{
				Code:   "23503",
				Detail: `Key (author)=(ghost) is not present in table "users".`,
			})

		_, err = repo.Create(context.Background(), domain.NewArticle{
			Author: "ghost", Title: "New", Body: "Body", Topic: "cats", ArticleImgURL: "https://example.com/x.png",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, "User 'ghost' does not exist", err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgArticleRepository_UpdateVotes(t *testing.T) {
	t.Run("applies increment in one statement", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)
		now := time.Now().UTC()

		mock.ExpectQuery(`UPDATE articles SET votes = votes \+ \$1 WHERE article_id = \$2 RETURNING`).
			WithArgs(int32(-100), int32(1)).
			WillReturnRows(pgxmock.NewRows(articleColumns).
				AddRow(int32(1), "Title", "mitch", "butter_bridge", "Body", now, int32(0), "https://example.com/1.jpg", int64(11)))

		a, err := repo.UpdateVotes(context.Background(), 1, -100)
		require.NoError(t, err)
		assert.Equal(t, int32(0), a.Votes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing article", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`UPDATE articles`).
			WithArgs(int32(1), int32(999)).
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.UpdateVotes(context.Background(), 999, 1)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, domain.MsgArticleNotFound, err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero increment is rejected without a query", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		_, err = repo.UpdateVotes(context.Background(), 1, 0)
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, domain.MsgInvalidVotes, ve.Message)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("overflow is invalid votes", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`UPDATE articles`).
			WithArgs(int32(2147483647), int32(1)).
			WillReturnError(&pgconn.PgError{Code: "22003"})

		_, err = repo.UpdateVotes(context.Background(), 1, 2147483647)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgArticleRepository_Delete(t *testing.T) {
	t.Run("deletes existing article", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectExec(`DELETE FROM articles WHERE article_id = \$1`).
			WithArgs(int32(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Delete(context.Background(), 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing article", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectExec(`DELETE FROM articles`).
			WithArgs(int32(999)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err = repo.Delete(context.Background(), 999)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, domain.MsgArticleNotFound, err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
