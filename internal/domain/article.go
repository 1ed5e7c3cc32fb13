package domain

import (
	"strings"
	"time"
)

// DefaultArticleImgURL is stored when an article is created without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is a published news article.
// CommentCount is derived from the comments table and never stored.
type Article struct {
	ArticleID     int32
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     time.Time
	Votes         int32
	ArticleImgURL string
	CommentCount  int64
}

// NewArticle holds the fields accepted when creating an article.
type NewArticle struct {
	Author        string
	Title         string
	Body          string
	Topic         string
	ArticleImgURL string
}

// Normalize applies the default image when none was supplied.
func (a *NewArticle) Normalize() {
	if strings.TrimSpace(a.ArticleImgURL) == "" {
		a.ArticleImgURL = DefaultArticleImgURL
	}
}

// ArticleList is one page of an article listing together with the number of
// rows that matched before pagination.
type ArticleList struct {
	Articles   []Article
	TotalCount int
}
