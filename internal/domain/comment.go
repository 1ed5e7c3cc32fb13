package domain

import (
	"strings"
	"time"
)

// Comment is a reader comment attached to an article.
type Comment struct {
	CommentID int32
	ArticleID int32
	Body      string
	Votes     int32
	Author    string
	CreatedAt time.Time
}

// NewComment holds the fields accepted when posting a comment.
type NewComment struct {
	ArticleID int32
	Username  string
	Body      string
}

// Validate reports whether the comment can be stored.
func (c NewComment) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return NewValidationError("username", MsgMissingProperties)
	}
	if strings.TrimSpace(c.Body) == "" {
		return NewValidationError("body", MsgEmptyCommentBody)
	}
	return nil
}
