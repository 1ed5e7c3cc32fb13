// Package domain provides the domain models and error taxonomy of the news API.
package domain

// Topic is a subject area articles are filed under.
type Topic struct {
	Slug        string
	Description string
	ImgURL      string
}

// User is a registered author of articles and comments.
type User struct {
	Username  string
	Name      string
	AvatarURL string
}
