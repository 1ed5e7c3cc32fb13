package repository

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsroom/news-api/internal/domain"
)

func TestParseArticleFilter(t *testing.T) {
	t.Run("defaults when empty", func(t *testing.T) {
		f, err := ParseArticleFilter("", "", "")
		require.NoError(t, err)
		assert.Equal(t, ArticleFilter{SortBy: "created_at", Order: "desc"}, f)
		assert.False(t, f.HasTopic())
	})

	t.Run("accepts every allow-listed sort key", func(t *testing.T) {
		for _, key := range SortKeys() {
			f, err := ParseArticleFilter(key, "asc", "")
			require.NoError(t, err, key)
			assert.Equal(t, key, f.SortBy)
		}
	})

	t.Run("order is case-insensitive", func(t *testing.T) {
		f, err := ParseArticleFilter("votes", "ASC", "cats")
		require.NoError(t, err)
		assert.Equal(t, "asc", f.Order)
		assert.Equal(t, "cats", f.Topic)
		assert.True(t, f.HasTopic())
	})

	rejected := []struct {
		name   string
		sortBy string
		order  string
		field  string
	}{
		{"unknown column", "body", "", "sort_by"},
		{"sql injection attempt", "votes; DROP TABLE articles", "", "sort_by"},
		{"qualified column", "a.votes", "", "sort_by"},
		{"unknown order", "votes", "sideways", "order"},
		{"order injection", "votes", "asc, 1", "order"},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArticleFilter(tt.sortBy, tt.order, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, domain.MsgInvalidInput, ve.Message)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestArticleFilter_BuildListQuery(t *testing.T) {
	t.Run("no topic", func(t *testing.T) {
		f, err := ParseArticleFilter("", "", "")
		require.NoError(t, err)

		query, args := f.BuildListQuery()
		assert.Empty(t, args)
		assert.NotContains(t, query, "WHERE")
		assert.NotContains(t, query, "a.body")
		assert.Contains(t, query, "COALESCE(COUNT(c.comment_id), 0) AS comment_count")
		assert.Contains(t, query, "LEFT JOIN comments c ON c.article_id = a.article_id")
		assert.Contains(t, query, "GROUP BY a.article_id")
		assert.True(t, strings.HasSuffix(query, "ORDER BY a.created_at DESC, a.article_id DESC"))
	})

	t.Run("topic is bound, never interpolated", func(t *testing.T) {
		f, err := ParseArticleFilter("title", "asc", "cats' OR '1'='1")
		require.NoError(t, err)

		query, args := f.BuildListQuery()
		assert.Equal(t, []any{"cats' OR '1'='1"}, args)
		assert.Contains(t, query, "WHERE a.topic = $1")
		assert.NotContains(t, query, "OR '1'='1")
		assert.True(t, strings.HasSuffix(query, "ORDER BY a.title ASC, a.article_id ASC"))
	})

	t.Run("article_id sort has no tiebreaker", func(t *testing.T) {
		f := ArticleFilter{SortBy: "article_id", Order: "asc"}
		query, _ := f.BuildListQuery()
		assert.True(t, strings.HasSuffix(query, "ORDER BY a.article_id ASC"))
	})

	t.Run("zero filter falls back to defaults", func(t *testing.T) {
		query, _ := ArticleFilter{}.BuildListQuery()
		assert.True(t, strings.HasSuffix(query, "ORDER BY a.created_at DESC, a.article_id DESC"))
	})
}

func TestParsePage(t *testing.T) {
	valid := []struct {
		name  string
		limit string
		page  string
		want  Page
	}{
		{"defaults", "", "", Page{Limit: 10, Number: 1}},
		{"explicit", "5", "3", Page{Limit: 5, Number: 3}},
		{"surrounding whitespace", " 7 ", " 2", Page{Limit: 7, Number: 2}},
		{"clamped limit", "99999999999", "1", Page{Limit: math.MaxInt32, Number: 1}},
		{"clamped beyond int64", "123456789012345678901234567890", "1", Page{Limit: math.MaxInt32, Number: 1}},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePage(tt.limit, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	invalid := []struct {
		name  string
		limit string
		page  string
		field string
	}{
		{"zero limit", "0", "", "limit"},
		{"negative limit", "-5", "", "limit"},
		{"huge negative limit", "-99999999999999999999999", "", "limit"},
		{"non-numeric limit", "ten", "", "limit"},
		{"fractional limit", "2.5", "", "limit"},
		{"NaN limit", "NaN", "", "limit"},
		{"infinite limit", "Infinity", "", "limit"},
		{"zero page", "10", "0", "p"},
		{"non-numeric page", "10", "two", "p"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePage(tt.limit, tt.page)
			require.Error(t, err)

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, domain.MsgInvalidInput, ve.Message)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestPage_Validate(t *testing.T) {
	assert.NoError(t, DefaultPageRequest().Validate())
	assert.Error(t, Page{Limit: 0, Number: 1}.Validate())
	assert.Error(t, Page{Limit: 1, Number: 0}.Validate())
}

func TestPaginate(t *testing.T) {
	rows := make([]int, 13)
	for i := range rows {
		rows[i] = i + 1
	}

	t.Run("pages partition the rows", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, Paginate(rows, Page{Limit: 5, Number: 1}))
		assert.Equal(t, []int{6, 7, 8, 9, 10}, Paginate(rows, Page{Limit: 5, Number: 2}))
		assert.Equal(t, []int{11, 12, 13}, Paginate(rows, Page{Limit: 5, Number: 3}))
	})

	t.Run("page past the end is empty not nil", func(t *testing.T) {
		got := Paginate(rows, Page{Limit: 5, Number: 4})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("length formula holds", func(t *testing.T) {
		for limit := 1; limit <= 15; limit++ {
			for page := 1; page <= 15; page++ {
				want := limit
				if remaining := len(rows) - limit*(page-1); remaining < want {
					want = remaining
				}
				if want < 0 {
					want = 0
				}
				assert.Len(t, Paginate(rows, Page{Limit: limit, Number: page}), want, "limit=%d page=%d", limit, page)
			}
		}
	})

	t.Run("clamped values do not overflow", func(t *testing.T) {
		got := Paginate(rows, Page{Limit: math.MaxInt32, Number: math.MaxInt32})
		assert.Empty(t, got)
		assert.Equal(t, rows, Paginate(rows, Page{Limit: math.MaxInt32, Number: 1}))
	})

	t.Run("invalid page yields empty", func(t *testing.T) {
		assert.Empty(t, Paginate(rows, Page{}))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Paginate([]string{}, DefaultPageRequest()))
	})
}
