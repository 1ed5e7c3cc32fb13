package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/newsroom/news-api/internal/domain"
)

// GenerateOptions controls the size of a generated dataset.
type GenerateOptions struct {
	// Seed makes generation reproducible. The same seed yields the same dataset.
	Seed int64

	Topics             int
	Users              int
	Articles           int
	MaxCommentsPerItem int

	// MaxDays bounds how far back created_at timestamps are spread.
	MaxDays int
}

// DefaultGenerateOptions returns a mid-sized dataset suitable for local development.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Seed:               1,
		Topics:             6,
		Users:              25,
		Articles:           120,
		MaxCommentsPerItem: 8,
		MaxDays:            365,
	}
}

func (o GenerateOptions) normalized() GenerateOptions {
	d := DefaultGenerateOptions()
	if o.Topics <= 0 {
		o.Topics = d.Topics
	}
	if o.Users <= 0 {
		o.Users = d.Users
	}
	if o.Articles < 0 {
		o.Articles = 0
	}
	if o.MaxCommentsPerItem < 0 {
		o.MaxCommentsPerItem = 0
	}
	if o.MaxDays <= 0 {
		o.MaxDays = d.MaxDays
	}
	return o
}

// Generate builds a pseudo-random dataset. Timestamps are spread backwards from now.
func Generate(opts GenerateOptions) Dataset {
	return generateAt(opts, time.Now().UTC().Truncate(time.Second))
}

func generateAt(opts GenerateOptions, now time.Time) Dataset {
	opts = opts.normalized()
	f := gofakeit.New(opts.Seed)
	start := now.AddDate(0, 0, -opts.MaxDays)

	var ds Dataset

	slugs := uniqueNames(opts.Topics, func() string { return strings.ToLower(f.Noun()) })
	for _, slug := range slugs {
		ds.Topics = append(ds.Topics, domain.Topic{
			Slug:        slug,
			Description: f.Sentence(6),
			ImgURL:      fmt.Sprintf("https://picsum.photos/seed/%s/640/480", slug),
		})
	}

	usernames := uniqueNames(opts.Users, func() string { return strings.ToLower(f.Username()) })
	for _, username := range usernames {
		ds.Users = append(ds.Users, domain.User{
			Username:  username,
			Name:      f.Name(),
			AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
		})
	}

	for i := 0; i < opts.Articles; i++ {
		created := f.DateRange(start, now).UTC().Truncate(time.Second)
		ds.Articles = append(ds.Articles, ArticleRow{
			Title:         strings.TrimSuffix(f.Sentence(f.Number(3, 8)), "."),
			Topic:         slugs[f.Number(0, len(slugs)-1)],
			Author:        usernames[f.Number(0, len(usernames)-1)],
			Body:          f.Paragraph(1, 3, 12, "\n"),
			CreatedAt:     created,
			Votes:         int32(f.Number(-20, 200)),
			ArticleImgURL: fmt.Sprintf("https://picsum.photos/seed/%s/700/700", f.UUID()),
		})

		for c := f.Number(0, opts.MaxCommentsPerItem); c > 0; c-- {
			ds.Comments = append(ds.Comments, CommentRow{
				ArticleID: int32(i + 1),
				Body:      f.Sentence(f.Number(4, 20)),
				Votes:     int32(f.Number(-10, 50)),
				Author:    usernames[f.Number(0, len(usernames)-1)],
				CreatedAt: f.DateRange(created, now).UTC().Truncate(time.Second),
			})
		}
	}

	return ds
}

// uniqueNames draws n distinct names from next, suffixing repeats with a counter.
func uniqueNames(n int, next func() string) []string {
	seen := make(map[string]int, n)
	out := make([]string, 0, n)
	for len(out) < n {
		name := strings.ReplaceAll(next(), " ", "_")
		if name == "" {
			name = "item"
		}
		seen[name]++
		if seen[name] > 1 {
			name = fmt.Sprintf("%s_%d", name, seen[name])
			if _, taken := seen[name]; taken {
				continue
			}
			seen[name] = 1
		}
		out = append(out, name)
	}
	return out
}
