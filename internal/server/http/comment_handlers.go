package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newsroom/news-api/internal/domain"
)

// createCommentRequest is the JSON request body for POST /api/articles/{articleID}/comments.
// An empty body is reported with its own message, so only username is tagged.
type createCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body"`
}

// listArticleComments handles GET /api/articles/{articleID}/comments.
func (s *Server) listArticleComments(w http.ResponseWriter, r *http.Request) {
	articleID, ok := parseID(w, chi.URLParam(r, "articleID"))
	if !ok {
		return
	}

	q := r.URL.Query()
	page, err := parsePageQuery(q)
	if err != nil {
		s.writeDomainError(w, r, "list_comments", err)
		return
	}

	comments, err := s.comments.ListByArticle(r.Context(), articleID, page)
	if err != nil {
		s.writeDomainError(w, r, "list_comments", err)
		return
	}

	resp := listCommentsResponse{Comments: make([]commentResponse, len(comments))}
	for i, c := range comments {
		resp.Comments[i] = domainCommentToResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

// createComment handles POST /api/articles/{articleID}/comments.
func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	articleID, ok := parseID(w, chi.URLParam(r, "articleID"))
	if !ok {
		return
	}

	var req createCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	in := domain.NewComment{ArticleID: articleID, Username: req.Username, Body: req.Body}
	if err := in.Validate(); err != nil {
		s.writeDomainError(w, r, "create_comment", err)
		return
	}

	comment, err := s.comments.Create(r.Context(), in)
	if err != nil {
		s.writeDomainError(w, r, "create_comment", err)
		return
	}

	writeJSON(w, http.StatusCreated, createCommentResponse{Comment: domainCommentToResponse(*comment)})
}

// updateCommentVotes handles PATCH /api/comments/{commentID}.
func (s *Server) updateCommentVotes(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "commentID"))
	if !ok {
		return
	}

	inc, ok := decodeVotes(w, r)
	if !ok {
		return
	}

	comment, err := s.comments.UpdateVotes(r.Context(), id, inc)
	if err != nil {
		s.writeDomainError(w, r, "update_comment_votes", err)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordVoteApplied("comment")
	}

	writeJSON(w, http.StatusOK, updateCommentResponse{UpdatedComment: domainCommentToResponse(*comment)})
}

// deleteComment handles DELETE /api/comments/{commentID}.
func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "commentID"))
	if !ok {
		return
	}

	if err := s.comments.Delete(r.Context(), id); err != nil {
		s.writeDomainError(w, r, "delete_comment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
