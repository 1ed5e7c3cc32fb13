package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsroom/news-api/internal/domain"
)

func TestPgTopicRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPgTopicRepository(mock)

	mock.ExpectQuery(`SELECT slug, description, img_url FROM topics`).
		WillReturnRows(pgxmock.NewRows([]string{"slug", "description", "img_url"}).
			AddRow("cats", "Not dogs", "").
			AddRow("mitch", "The man, the Mitch, the legend", ""))

	topics, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "cats", topics[0].Slug)
	assert.Equal(t, "Not dogs", topics[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgTopicRepository_Create(t *testing.T) {
	t.Run("inserts topic", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgTopicRepository(mock)

		mock.ExpectQuery(`INSERT INTO topics \(slug, description, img_url\)`).
			WithArgs("dogs", "Not cats", "").
			WillReturnRows(pgxmock.NewRows([]string{"slug", "description", "img_url"}).
				AddRow("dogs", "Not cats", ""))

		topic, err := repo.Create(context.Background(), domain.Topic{Slug: "dogs", Description: "Not cats"})
		require.NoError(t, err)
		assert.Equal(t, "dogs", topic.Slug)
		assert.Equal(t, "", topic.ImgURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate slug", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgTopicRepository(mock)

		mock.ExpectQuery(`INSERT INTO topics`).
			WithArgs("cats", "again", "").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err = repo.Create(context.Background(), domain.Topic{Slug: "cats", Description: "again"})
		assert.True(t, errors.Is(err, domain.ErrAlreadyExists))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
