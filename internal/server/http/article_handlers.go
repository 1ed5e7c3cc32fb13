package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newsroom/news-api/internal/domain"
	"github.com/newsroom/news-api/internal/observability"
	"github.com/newsroom/news-api/internal/repository"
)

// createArticleRequest is the JSON request body for POST /api/articles.
type createArticleRequest struct {
	Author        string `json:"author" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Body          string `json:"body" validate:"required"`
	Topic         string `json:"topic" validate:"required"`
	ArticleImgURL string `json:"article_img_url"`
}

// listArticles handles GET /api/articles.
// Query parameters: sort_by, order, topic, limit and p (page is accepted as an alias).
func (s *Server) listArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := repository.ParseArticleFilter(q.Get("sort_by"), q.Get("order"), q.Get("topic"))
	if err != nil {
		s.writeDomainError(w, r, "list_articles", err)
		return
	}

	page, err := parsePageQuery(q)
	if err != nil {
		s.writeDomainError(w, r, "list_articles", err)
		return
	}

	logger := observability.WithArticleQuery(
		observability.LoggerFromContext(r.Context(), s.logger), filter.Topic, filter.SortBy, filter.Order)
	logger.Debug().Int("limit", page.Limit).Int("page", page.Number).Msg("listing articles")

	list, err := s.articles.List(r.Context(), filter, page)
	if err != nil {
		s.writeDomainError(w, r, "list_articles", err)
		return
	}

	resp := listArticlesResponse{
		Articles:   make([]articleResponse, len(list.Articles)),
		TotalCount: list.TotalCount,
	}
	for i, a := range list.Articles {
		resp.Articles[i] = domainArticleToResponse(a)
	}
	if s.metrics != nil {
		s.metrics.RecordArticlesListed(len(resp.Articles))
	}

	writeJSON(w, http.StatusOK, resp)
}

// createArticle handles POST /api/articles.
func (s *Server) createArticle(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	article, err := s.articles.Create(r.Context(), domain.NewArticle{
		Author:        req.Author,
		Title:         req.Title,
		Body:          req.Body,
		Topic:         req.Topic,
		ArticleImgURL: req.ArticleImgURL,
	})
	if err != nil {
		s.writeDomainError(w, r, "create_article", err)
		return
	}

	writeJSON(w, http.StatusOK, createArticleResponse{NewArticle: domainArticleToResponse(*article)})
}

// getArticle handles GET /api/articles/{articleID}.
func (s *Server) getArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "articleID"))
	if !ok {
		return
	}

	article, err := s.articles.GetByID(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, r, "get_article", err)
		return
	}

	writeJSON(w, http.StatusOK, getArticleResponse{Article: domainArticleToResponse(*article)})
}

// updateArticleVotes handles PATCH /api/articles/{articleID}.
func (s *Server) updateArticleVotes(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "articleID"))
	if !ok {
		return
	}

	inc, ok := decodeVotes(w, r)
	if !ok {
		return
	}

	article, err := s.articles.UpdateVotes(r.Context(), id, inc)
	if err != nil {
		s.writeDomainError(w, r, "update_article_votes", err)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordVoteApplied("article")
	}

	writeJSON(w, http.StatusOK, getArticleResponse{Article: domainArticleToResponse(*article)})
}

// deleteArticle handles DELETE /api/articles/{articleID}. Comments on the
// article are removed with it.
func (s *Server) deleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "articleID"))
	if !ok {
		return
	}

	if err := s.articles.Delete(r.Context(), id); err != nil {
		s.writeDomainError(w, r, "delete_article", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
