// Package observability provides logging and metrics support for the news API.
//
// # Logging
//
// Create a logger from configuration:
//
//	logger := observability.NewLogger(observability.LoggingConfig{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stdout",
//	})
//	logger.Info().Str("request_id", reqID).Msg("request completed")
//
// Add request context to a logger:
//
//	logger = observability.WithRequestContext(logger, requestID, method, path)
//
// # Metrics
//
// Initialize metrics once per process:
//
//	metrics := observability.NewMetrics("news_api")
//
// Record metrics:
//
//	metrics.RecordHTTPRequest("GET", "/api/articles", 200, 0.012)
//	metrics.RecordArticlesListed(10)
//	metrics.RecordVoteApplied("comment")
//
// # Context Helpers
//
//	ctx = observability.WithRequestID(ctx, requestID)
//	reqID := observability.RequestIDFromContext(ctx)
//
// # Standard Fields
//
//   - request_id: correlation identifier of the HTTP request
//   - method, path, route, status: HTTP request attributes
//   - article_id, comment_id: resource identifiers
//   - topic, sort_by, order: article query parameters
//
// All components are safe for concurrent use from multiple goroutines.
package observability
