package httpserver

import (
	"encoding/json"
	"time"

	"github.com/newsroom/news-api/internal/domain"
)

// Response types for JSON serialization.

type messageResponse struct {
	Msg string `json:"msg"`
}

type endpointsResponse struct {
	Endpoints json.RawMessage `json:"endpoints"`
}

type topicResponse struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImgURL      string `json:"img_url"`
}

type listTopicsResponse struct {
	Topics []topicResponse `json:"topics"`
}

type createTopicResponse struct {
	Topic topicResponse `json:"topic"`
}

type userResponse struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
}

type getUserResponse struct {
	User userResponse `json:"user"`
}

// articleResponse is an article as returned by every article endpoint.
// comment_count is a string because the store reports the aggregate as bigint.
type articleResponse struct {
	ArticleID     int32     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int32     `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int64     `json:"comment_count,string"`
}

type listArticlesResponse struct {
	Articles   []articleResponse `json:"articles"`
	TotalCount int               `json:"total_count"`
}

type getArticleResponse struct {
	Article articleResponse `json:"article"`
}

type createArticleResponse struct {
	NewArticle articleResponse `json:"newArticle"`
}

type commentResponse struct {
	CommentID int32     `json:"comment_id"`
	Votes     int32     `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	ArticleID int32     `json:"article_id"`
}

type listCommentsResponse struct {
	Comments []commentResponse `json:"comments"`
}

type createCommentResponse struct {
	Comment commentResponse `json:"comment"`
}

type updateCommentResponse struct {
	UpdatedComment commentResponse `json:"updatedComment"`
}

// Converter functions

func domainTopicToResponse(t domain.Topic) topicResponse {
	return topicResponse{
		Slug:        t.Slug,
		Description: t.Description,
		ImgURL:      t.ImgURL,
	}
}

func domainUserToResponse(u domain.User) userResponse {
	return userResponse{
		Username:  u.Username,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}

func domainArticleToResponse(a domain.Article) articleResponse {
	return articleResponse{
		ArticleID:     a.ArticleID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		Body:          a.Body,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}

func domainCommentToResponse(c domain.Comment) commentResponse {
	return commentResponse{
		CommentID: c.CommentID,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
		Author:    c.Author,
		Body:      c.Body,
		ArticleID: c.ArticleID,
	}
}
