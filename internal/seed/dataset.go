// Package seed recreates development and test data for the news database.
//
// Two sources are provided. Fixtures returns a small fixed dataset that tests
// rely on (13 articles, 18 comments). Generate builds larger pseudo-random
// datasets with gofakeit for local development.
package seed

import (
	"fmt"
	"time"

	"github.com/newsroom/news-api/internal/domain"
)

// ArticleRow is an article as inserted by the seeder. Unlike domain.NewArticle it
// carries an explicit creation time and vote count.
type ArticleRow struct {
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     time.Time
	Votes         int32
	ArticleImgURL string
}

// CommentRow is a comment as inserted by the seeder. ArticleID is the 1-based
// position of the parent article in Dataset.Articles, which matches the
// generated article_id after identities are reset.
type CommentRow struct {
	ArticleID int32
	Body      string
	Votes     int32
	Author    string
	CreatedAt time.Time
}

// Dataset is a complete set of rows for all four tables.
type Dataset struct {
	Topics   []domain.Topic
	Users    []domain.User
	Articles []ArticleRow
	Comments []CommentRow
}

// Validate checks that every reference in the dataset resolves inside it.
func (d Dataset) Validate() error {
	topics := make(map[string]struct{}, len(d.Topics))
	for _, t := range d.Topics {
		if t.Slug == "" {
			return fmt.Errorf("topic with empty slug")
		}
		if _, dup := topics[t.Slug]; dup {
			return fmt.Errorf("duplicate topic %q", t.Slug)
		}
		topics[t.Slug] = struct{}{}
	}

	users := make(map[string]struct{}, len(d.Users))
	for _, u := range d.Users {
		if u.Username == "" {
			return fmt.Errorf("user with empty username")
		}
		if _, dup := users[u.Username]; dup {
			return fmt.Errorf("duplicate user %q", u.Username)
		}
		users[u.Username] = struct{}{}
	}

	for i, a := range d.Articles {
		if _, ok := topics[a.Topic]; !ok {
			return fmt.Errorf("article %d: unknown topic %q", i+1, a.Topic)
		}
		if _, ok := users[a.Author]; !ok {
			return fmt.Errorf("article %d: unknown author %q", i+1, a.Author)
		}
	}

	for i, c := range d.Comments {
		if c.ArticleID < 1 || int(c.ArticleID) > len(d.Articles) {
			return fmt.Errorf("comment %d: article %d out of range", i+1, c.ArticleID)
		}
		if _, ok := users[c.Author]; !ok {
			return fmt.Errorf("comment %d: unknown author %q", i+1, c.Author)
		}
		if c.Body == "" {
			return fmt.Errorf("comment %d: empty body", i+1)
		}
	}
	return nil
}
