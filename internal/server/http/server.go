// Package httpserver provides the HTTP REST API server for the news API.
package httpserver

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/newsroom/news-api/internal/database"
	"github.com/newsroom/news-api/internal/observability"
	"github.com/newsroom/news-api/internal/repository"
)

//go:embed endpoints.json
var endpointsJSON []byte

// HealthChecker reports the state of the backing store.
type HealthChecker interface {
	Health(ctx context.Context) database.HealthStatus
}

// Repositories groups the data access dependencies of the handlers.
type Repositories struct {
	Topics   repository.TopicRepository
	Users    repository.UserRepository
	Articles repository.ArticleRepository
	Comments repository.CommentRepository
}

// Server is the HTTP REST API server.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	topics     repository.TopicRepository
	users      repository.UserRepository
	articles   repository.ArticleRepository
	comments   repository.CommentRepository
	health     HealthChecker
	metrics    *observability.Metrics
	logger     zerolog.Logger
}

// Config holds HTTP server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// NewServer creates a new HTTP server with all dependencies.
// metrics may be nil, in which case requests are not instrumented.
func NewServer(
	cfg Config,
	repos Repositories,
	health HealthChecker,
	metrics *observability.Metrics,
	logger zerolog.Logger,
) *Server {
	s := &Server{
		topics:   repos.Topics,
		users:    repos.Users,
		articles: repos.Articles,
		comments: repos.Comments,
		health:   health,
		metrics:  metrics,
		logger:   logger.With().Str("component", "http-server").Logger(),
	}

	s.router = s.buildRouter()

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// buildRouter creates the chi router with all middleware and routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(correlationIDMiddleware)
	r.Use(accessLogMiddleware(s.logger))
	if s.metrics != nil {
		r.Use(metricsMiddleware(s.metrics))
	}
	r.Use(jsonContentTypeMiddleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/", s.welcome)
	r.Get("/healthz", s.healthHandler)
	r.Get("/readyz", s.readinessHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.getEndpoints)

		r.Get("/topics", s.listTopics)
		r.Post("/topics", s.createTopic)

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", s.listArticles)
			r.Post("/", s.createArticle)
			r.Get("/{articleID}", s.getArticle)
			r.Patch("/{articleID}", s.updateArticleVotes)
			r.Delete("/{articleID}", s.deleteArticle)
			r.Get("/{articleID}/comments", s.listArticleComments)
			r.Post("/{articleID}/comments", s.createComment)
		})

		r.Patch("/comments/{commentID}", s.updateCommentVotes)
		r.Delete("/comments/{commentID}", s.deleteComment)

		r.Get("/users", s.listUsers)
		r.Get("/users/{username}", s.getUser)
	})

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("HTTP server starting")
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on HTTP address: %w", err)
	}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) welcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Msg: "Welcome to the API!"})
}

// getEndpoints serves the embedded description of every route.
func (s *Server) getEndpoints(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, endpointsResponse{Endpoints: json.RawMessage(endpointsJSON)})
}

// healthHandler returns basic liveness status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if s.health == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	health := s.health.Health(r.Context())
	if health.Status == "healthy" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": health.Status})
		return
	}
	logHealthFailure(r, s.logger, health)
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"status":   "unhealthy",
		"database": health.Status,
	})
}

// readinessHandler reports whether the store can serve queries.
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	if s.health == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready"})
		return
	}
	health := s.health.Health(r.Context())
	if health.Status != "healthy" {
		logHealthFailure(r, s.logger, health)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "not_ready",
			"database": health.Status,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "healthy",
	})
}

// logHealthFailure records the store error, which is kept out of the response body.
func logHealthFailure(r *http.Request, fallback zerolog.Logger, health database.HealthStatus) {
	logger := observability.LoggerFromContext(r.Context(), fallback)
	logger.Warn().
		Str("database", health.Status).
		Str("error", health.Error).
		Str("path", r.URL.Path).
		Msg("health check failed")
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Best-effort; headers already sent.
		_ = err
	}
}

// writeError writes a JSON error response of the form {"msg": message}.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, messageResponse{Msg: message})
}
