package repository

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/newsroom/news-api/internal/domain"
)

// Listing defaults applied when a query parameter is absent or empty.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
	DefaultLimit  = 10
	DefaultPage   = 1
)

// sortColumns maps the sort keys clients may send to the qualified column they
// order by. ORDER BY cannot take bind parameters, so only values from this table
// are ever interpolated into SQL.
var sortColumns = map[string]string{
	"author":     "a.author",
	"title":      "a.title",
	"article_id": "a.article_id",
	"topic":      "a.topic",
	"created_at": "a.created_at",
	"votes":      "a.votes",
}

// sortDirections maps lowercase order keys to SQL keywords.
var sortDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// SortKeys returns the accepted sort_by values.
func SortKeys() []string {
	return []string{"author", "title", "article_id", "topic", "created_at", "votes"}
}

// ArticleFilter holds validated article listing options.
type ArticleFilter struct {
	// SortBy is a key of sortColumns.
	SortBy string
	// Order is "asc" or "desc".
	Order string
	// Topic restricts results to one topic slug. Empty means no filter.
	Topic string
}

// ParseArticleFilter validates raw query-string values. Empty strings take the
// defaults. Any rejected value yields a ValidationError with MsgInvalidInput.
func ParseArticleFilter(sortBy, order, topic string) (ArticleFilter, error) {
	f := ArticleFilter{
		SortBy: strings.TrimSpace(sortBy),
		Order:  strings.ToLower(strings.TrimSpace(order)),
		Topic:  topic,
	}
	if f.SortBy == "" {
		f.SortBy = DefaultSortBy
	}
	if f.Order == "" {
		f.Order = DefaultOrder
	}

	if err := f.Validate(); err != nil {
		return ArticleFilter{}, err
	}
	return f, nil
}

// Validate checks SortBy and Order against the allow-lists.
func (f ArticleFilter) Validate() error {
	if _, ok := sortColumns[f.SortBy]; !ok {
		return domain.NewValidationError("sort_by", domain.MsgInvalidInput)
	}
	if _, ok := sortDirections[strings.ToLower(f.Order)]; !ok {
		return domain.NewValidationError("order", domain.MsgInvalidInput)
	}
	return nil
}

// HasTopic reports whether a topic filter was supplied.
func (f ArticleFilter) HasTopic() bool {
	return f.Topic != ""
}

// orderClause returns the ORDER BY clause for f. Unknown keys fall back to the
// defaults so a zero ArticleFilter still produces safe SQL.
func (f ArticleFilter) orderClause() string {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = sortColumns[DefaultSortBy]
	}
	direction, ok := sortDirections[strings.ToLower(f.Order)]
	if !ok {
		direction = sortDirections[DefaultOrder]
	}
	// article_id keeps the order stable when the sort column has ties.
	if column == "a.article_id" {
		return fmt.Sprintf("ORDER BY %s %s", column, direction)
	}
	return fmt.Sprintf("ORDER BY %s %s, a.article_id %s", column, direction, direction)
}

const articleListSelect = `
	SELECT a.author, a.title, a.article_id, a.topic, a.created_at, a.votes, a.article_img_url,
		COALESCE(COUNT(c.comment_id), 0) AS comment_count
	FROM articles a
	LEFT JOIN comments c ON c.article_id = a.article_id`

// BuildListQuery returns the listing SQL and its bind arguments. The topic is
// always bound as a parameter; sort column and direction come from the allow-lists.
func (f ArticleFilter) BuildListQuery() (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(articleListSelect)

	if f.HasTopic() {
		args = append(args, f.Topic)
		sb.WriteString(fmt.Sprintf("\n\tWHERE a.topic = $%d", len(args)))
	}

	sb.WriteString("\n\tGROUP BY a.article_id\n\t")
	sb.WriteString(f.orderClause())
	return sb.String(), args
}

// Page identifies one pagination slice.
type Page struct {
	Limit  int
	Number int
}

// DefaultPageRequest returns the first page with the default size.
func DefaultPageRequest() Page {
	return Page{Limit: DefaultLimit, Number: DefaultPage}
}

// ParsePage validates raw limit and page values. Empty strings take the defaults;
// anything that is not a positive integer yields a ValidationError with MsgInvalidInput.
func ParsePage(limit, page string) (Page, error) {
	l, err := parsePositive(limit, DefaultLimit)
	if err != nil {
		return Page{}, domain.NewValidationError("limit", domain.MsgInvalidInput)
	}
	p, err := parsePositive(page, DefaultPage)
	if err != nil {
		return Page{}, domain.NewValidationError("p", domain.MsgInvalidInput)
	}
	return Page{Limit: l, Number: p}, nil
}

var errNotPositive = errors.New("value must be a positive integer")

// parsePositive parses a strictly positive base-10 integer. Values larger than
// math.MaxInt32 are clamped to it.
func parsePositive(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return math.MaxInt32, nil
		}
		return 0, err
	}
	if n <= 0 {
		return 0, errNotPositive
	}
	if n > math.MaxInt32 {
		return math.MaxInt32, nil
	}
	return int(n), nil
}

// Validate checks that both limit and page number are positive.
func (p Page) Validate() error {
	if p.Limit <= 0 {
		return domain.NewValidationError("limit", domain.MsgInvalidInput)
	}
	if p.Number <= 0 {
		return domain.NewValidationError("p", domain.MsgInvalidInput)
	}
	return nil
}

// Offset returns the index of the first row on the page.
func (p Page) Offset() int64 {
	return int64(p.Limit) * int64(p.Number-1)
}

// Paginate returns the [offset, offset+limit) slice of rows. A page past the end
// yields an empty, non-nil slice.
func Paginate[T any](rows []T, p Page) []T {
	if p.Limit <= 0 || p.Number <= 0 {
		return []T{}
	}
	start := p.Offset()
	if start >= int64(len(rows)) {
		return []T{}
	}
	end := start + int64(p.Limit)
	if end > int64(len(rows)) {
		end = int64(len(rows))
	}
	return rows[start:end]
}
