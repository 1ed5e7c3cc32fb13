package seed

import (
	"time"

	"github.com/newsroom/news-api/internal/domain"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Fixtures returns the fixed dataset used by integration tests. Article 1 has 100
// votes and 11 comments, topic "cats" has exactly one article and topic "paper"
// has none.
func Fixtures() Dataset {
	img := domain.DefaultArticleImgURL

	return Dataset{
		Topics: []domain.Topic{
			{Slug: "mitch", Description: "The man, the Mitch, the legend"},
			{Slug: "cats", Description: "Not dogs"},
			{Slug: "paper", Description: "what books are made of"},
		},
		Users: []domain.User{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Articles: []ArticleRow{
			{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: ts("2020-07-09T20:11:00Z"), Votes: 100, ArticleImgURL: img},
			{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell. Some years ago I thought I would buy a laptop.", CreatedAt: ts("2020-10-16T05:03:00Z"), ArticleImgURL: img},
			{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: ts("2020-11-03T09:12:00Z"), ArticleImgURL: img},
			{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: ts("2020-05-06T01:14:00Z"), ArticleImgURL: img},
			{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: ts("2020-08-03T13:14:00Z"), ArticleImgURL: img},
			{Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: ts("2020-10-18T01:00:00Z"), ArticleImgURL: img},
			{Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: ts("2020-01-07T14:08:00Z"), ArticleImgURL: img},
			{Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity.", CreatedAt: ts("2020-04-17T01:08:00Z"), ArticleImgURL: img},
			{Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: ts("2020-06-06T09:10:00Z"), ArticleImgURL: img},
			{Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: ts("2020-05-14T04:15:00Z"), ArticleImgURL: img},
			{Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall.", CreatedAt: ts("2020-01-15T22:21:00Z"), ArticleImgURL: img},
			{Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: ts("2020-10-11T11:24:00Z"), ArticleImgURL: img},
			{Title: "Another article about Mitch", Topic: "mitch", Author: "butter_bridge", Body: "There will never be enough articles about Mitch!", CreatedAt: ts("2020-10-11T11:24:00Z"), ArticleImgURL: img},
		},
		Comments: []CommentRow{
			{ArticleID: 9, Body: "Oh, I've got compassion running out of my ears.", Votes: 16, Author: "butter_bridge", CreatedAt: ts("2020-04-06T12:17:00Z")},
			{ArticleID: 1, Body: "The beautiful thing about treasure is that it exists.", Votes: 14, Author: "butter_bridge", CreatedAt: ts("2020-10-31T03:03:00Z")},
			{ArticleID: 1, Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones.", Votes: 100, Author: "icellusedkars", CreatedAt: ts("2020-03-01T01:13:00Z")},
			{ArticleID: 1, Body: " I carry a log, yes. Is it funny to you? It is not to me.", Votes: -100, Author: "icellusedkars", CreatedAt: ts("2020-02-23T12:01:00Z")},
			{ArticleID: 1, Body: "I hate streaming noses", Votes: 0, Author: "icellusedkars", CreatedAt: ts("2020-11-03T21:00:00Z")},
			{ArticleID: 1, Body: "I hate streaming eyes even more", Votes: 0, Author: "icellusedkars", CreatedAt: ts("2020-04-11T21:02:00Z")},
			{ArticleID: 1, Body: "Lobster pot", Votes: 0, Author: "icellusedkars", CreatedAt: ts("2020-05-15T20:19:00Z")},
			{ArticleID: 1, Body: "Delicious crackerbreads", Votes: 0, Author: "icellusedkars", CreatedAt: ts("2020-04-14T20:19:00Z")},
			{ArticleID: 1, Body: "Superficially charming", Votes: 0, Author: "icellusedkars", CreatedAt: ts("2020-01-01T03:08:00Z")},
			{ArticleID: 3, Body: "git push origin master", Votes: 0, Author: "icellusedkars", CreatedAt: ts("2020-06-20T07:24:00Z")},
			{ArticleID: 3, Body: "Ambidextrous marsupial", Votes: 0, Author: "icellusedkars", CreatedAt: ts("2020-09-19T23:10:00Z")},
			{ArticleID: 1, Body: "Massive intercranial brain haemorrhage", Votes: 0, Author: "icellusedkars", CreatedAt: ts("2020-03-02T07:10:00Z")},
			{ArticleID: 1, Body: "Fruit pastilles", Votes: 0, Author: "icellusedkars", CreatedAt: ts("2020-06-15T10:25:00Z")},
			{ArticleID: 5, Body: "What do you see? I have no idea where this will lead us.", Votes: 16, Author: "icellusedkars", CreatedAt: ts("2020-06-09T05:00:00Z")},
			{ArticleID: 5, Body: "I am 100% sure that we're not completely sure.", Votes: 1, Author: "butter_bridge", CreatedAt: ts("2020-11-24T00:08:00Z")},
			{ArticleID: 6, Body: "I hate streaming noses", Votes: 0, Author: "icellusedkars", CreatedAt: ts("2020-10-11T15:23:00Z")},
			{ArticleID: 9, Body: "Superficially charming", Votes: 0, Author: "icellusedkars", CreatedAt: ts("2020-01-01T03:08:00Z")},
			{ArticleID: 1, Body: "This morning, I showered for nine minutes.", Votes: 16, Author: "butter_bridge", CreatedAt: ts("2020-07-21T00:20:00Z")},
		},
	}
}
