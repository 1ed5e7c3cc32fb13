package httpserver

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/newsroom/news-api/internal/domain"
)

// FuzzParseIncVotes checks that accepted vote increments are always non-zero
// int32 values and that nothing panics.
func FuzzParseIncVotes(f *testing.F) {
	for _, seed := range []string{
		`1`, `-100`, `"5"`, `0`, `"0"`, `1.0`, `1.5`, `"abc"`, `null`, `true`, `[]`, `{}`,
		`2147483647`, `2147483648`, `-2147483649`, `1e3`, `"1e3"`, `""`, ``, `" 7 "`,
	} {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		n, err := parseIncVotes(json.RawMessage(data))
		if err != nil {
			return
		}
		if n == 0 {
			t.Fatalf("accepted zero increment from %q", data)
		}
		if int64(n) > math.MaxInt32 || int64(n) < math.MinInt32 {
			t.Fatalf("out of range increment %d from %q", n, data)
		}
	})
}

// FuzzCreateArticleBody sends arbitrary request bodies through the router and
// checks that malformed input never reaches the store or produces a 5xx.
func FuzzCreateArticleBody(f *testing.F) {
	for _, seed := range []string{
		`{"author":"butter_bridge","title":"t","body":"b","topic":"cats"}`,
		`{"author":"butter_bridge","title":"t","body":"b","topic":"cats","article_img_url":"javascript:alert(1)"}`,
		`{}`,
		`not json`,
		`{"author":null}`,
		`{"author":"` + strings.Repeat("a", 4096) + `"}`,
		"\x00\xff",
		`[1,2,3]`,
	} {
		f.Add(seed)
	}

	s := newTestHTTPServer(Repositories{
		Articles: &mockArticleRepo{
			createFn: func(_ context.Context, a domain.NewArticle) (*domain.Article, error) {
				if a.Author == "" || a.Title == "" || a.Body == "" || a.Topic == "" {
					panic("incomplete article reached the store")
				}
				return &domain.Article{ArticleID: 1, Author: a.Author, Title: a.Title, Body: a.Body, Topic: a.Topic}, nil
			},
		},
	})

	f.Fuzz(func(t *testing.T, body string) {
		rr := serveHTTP(s, http.MethodPost, "/api/articles", body)
		if rr.Code >= 500 {
			t.Fatalf("status %d for body %q: %s", rr.Code, body, rr.Body.String())
		}
	})
}
