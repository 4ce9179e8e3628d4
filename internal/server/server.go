// Package server is the HTTP boundary: it validates requests, invokes
// the fetch collaborator and the categorization pipeline, and maps the
// error taxonomy onto HTTP statuses. The pipeline itself stays pure;
// every failure mode is handled here.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"reddit-pulse-go/internal/aggregator"
	"reddit-pulse-go/internal/logger"
	"reddit-pulse-go/internal/reddit"
	"reddit-pulse-go/internal/types"
)

// Fetcher is the upstream post source. Satisfied by *reddit.Client.
type Fetcher interface {
	Search(ctx context.Context, query, timeframe, subreddit string) ([]types.RawPost, error)
}

type Server struct {
	fetcher Fetcher
	now     func() time.Time
}

func New(fetcher Fetcher) *Server {
	return &Server{fetcher: fetcher, now: time.Now}
}

// Routes builds the service mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	logger.New().WithRequest(r).Info("health check")
	fmt.Fprint(w, "ok")
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "analyze")

	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reqLog.WithError(err).Warn("bad request body")
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		reqLog.WithError(err).Warn("invalid request")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	reqLog = reqLog.WithField("query", req.Query).WithField("timeframe", req.Timeframe)

	start := time.Now()
	posts, err := s.fetcher.Search(r.Context(), req.Query, req.Timeframe, req.Subreddit)
	if err != nil {
		var statusErr *reddit.StatusError
		if errors.As(err, &statusErr) {
			reqLog.WithError(err).Warn("upstream non-success status")
			respondError(w, statusErr.Code, err.Error())
			return
		}
		reqLog.WithError(err).Error("fetch failed")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	report, err := aggregator.Aggregate(req.Query, req.Timeframe, req.Subreddit, posts, s.now())
	if err != nil {
		if errors.Is(err, aggregator.ErrNoResults) {
			reqLog.Info("no results for query")
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		reqLog.WithError(err).Error("aggregation failed")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).
		WithField("total_posts", report.Stats.Total).
		Info("analysis complete")

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		reqLog.WithError(err).Error("failed to write response")
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
