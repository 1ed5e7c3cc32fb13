package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/newsroom/news-api/internal/domain"
	"github.com/newsroom/news-api/internal/observability"
	"github.com/newsroom/news-api/internal/repository"
)

const maxRequestBodySize = 1 << 20 // 1 MB limit for request bodies

var validate = validator.New(validator.WithRequiredStructEnabled())

// createTopicRequest is the JSON request body for POST /api/topics.
type createTopicRequest struct {
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImgURL      string `json:"img_url"`
}

// listTopics handles GET /api/topics.
func (s *Server) listTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.topics.List(r.Context())
	if err != nil {
		s.writeDomainError(w, r, "list_topics", err)
		return
	}

	resp := listTopicsResponse{Topics: make([]topicResponse, len(topics))}
	for i, t := range topics {
		resp.Topics[i] = domainTopicToResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

// createTopic handles POST /api/topics.
func (s *Server) createTopic(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	topic, err := s.topics.Create(r.Context(), domain.Topic{
		Slug:        strings.TrimSpace(req.Slug),
		Description: req.Description,
		ImgURL:      req.ImgURL,
	})
	if err != nil {
		s.writeDomainError(w, r, "create_topic", err)
		return
	}

	writeJSON(w, http.StatusCreated, createTopicResponse{Topic: domainTopicToResponse(*topic)})
}

// listUsers handles GET /api/users.
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.writeDomainError(w, r, "list_users", err)
		return
	}

	resp := listUsersResponse{Users: make([]userResponse, len(users))}
	for i, u := range users {
		resp.Users[i] = domainUserToResponse(u)
	}
	writeJSON(w, http.StatusOK, resp)
}

// getUser handles GET /api/users/{username}.
func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		s.writeDomainError(w, r, "get_user", err)
		return
	}
	writeJSON(w, http.StatusOK, getUserResponse{User: domainUserToResponse(*user)})
}

// writeDomainError maps domain errors to HTTP status codes and writes a JSON error
// response. Unexpected errors are logged and counted; their details never reach
// the client.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if err == nil {
		return
	}

	var (
		ve *domain.ValidationError
		ne *domain.NotFoundError
		cv *domain.ConstraintViolationError
		ae *domain.AlreadyExistsError
	)

	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message)
	case errors.As(err, &cv):
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, cv.Error())
		} else {
			writeError(w, http.StatusBadRequest, cv.Error())
		}
	case errors.As(err, &ne):
		writeError(w, http.StatusNotFound, ne.Error())
	case errors.As(err, &ae):
		writeError(w, http.StatusConflict, ae.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, domain.MsgInvalidInput)
	default:
		logger := observability.LoggerFromContext(r.Context(), s.logger)
		logger.Error().Err(err).Str("operation", op).Msg("request failed")
		if s.metrics != nil {
			s.metrics.RecordStoreError(op)
		}
		writeError(w, http.StatusInternalServerError, domain.MsgInternalError)
	}
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// It writes a 400 response and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !decodeBody(w, r, dst) {
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// decodeBody reads the request body and unmarshals it into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, ok := readBody(w, r)
	if !ok {
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		writeError(w, http.StatusBadRequest, domain.MsgMissingProperties)
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		writeError(w, http.StatusBadRequest, domain.MsgInvalidInput)
		return false
	}
	return true
}

// readBody reads at most maxRequestBodySize bytes of the request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.MsgInvalidInput)
		return nil, false
	}
	if len(body) > maxRequestBodySize {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return nil, false
	}
	return body, true
}

// decodeVotes reads an {"inc_votes": n} body. Every malformed body, including an
// empty one, is reported as "Invalid votes format".
func decodeVotes(w http.ResponseWriter, r *http.Request) (int32, bool) {
	body, ok := readBody(w, r)
	if !ok {
		return 0, false
	}
	var req votesRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, domain.MsgInvalidVotes)
		return 0, false
	}
	inc, err := parseIncVotes(req.IncVotes)
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.MsgInvalidVotes)
		return 0, false
	}
	return inc, true
}

// validationMessage converts validator errors into a client message. A missing
// required field wins over any other failed tag.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.MsgInvalidInput
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return domain.MsgMissingProperties
		}
	}
	return domain.MsgInvalidInput
}

// parsePageQuery reads limit and p from the query string. page is accepted as an
// alias for p.
func parsePageQuery(q url.Values) (repository.Page, error) {
	pageParam := q.Get("p")
	if pageParam == "" {
		pageParam = q.Get("page")
	}
	return repository.ParsePage(q.Get("limit"), pageParam)
}

// parseID parses a path parameter as a 32-bit integer id, writing a 400 response
// with "Invalid ID format" when it is malformed or out of range.
func parseID(w http.ResponseWriter, raw string) (int32, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.MsgInvalidID)
		return 0, false
	}
	return int32(id), true
}

// votesRequest is the JSON request body for vote updates.
type votesRequest struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}

// parseIncVotes accepts a JSON number or numeric string holding a non-zero
// integer that fits in 32 bits.
func parseIncVotes(raw json.RawMessage) (int32, error) {
	invalid := domain.NewValidationError("inc_votes", domain.MsgInvalidVotes)

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, invalid
	}

	var text string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, invalid
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, invalid
		}
		text = n.String()
	}

	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		// Accept integral floats such as 1e2 or 5.0.
		f, ferr := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, invalid
		}
		if f > math.MaxInt32 || f < math.MinInt32 {
			return 0, invalid
		}
		v = int64(f)
	}
	if v == 0 || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, invalid
	}
	return int32(v), nil
}
