package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddit-pulse-go/internal/reddit"
	"reddit-pulse-go/internal/types"
)

type stubFetcher struct {
	posts []types.RawPost
	err   error

	gotQuery     string
	gotTimeframe string
	gotSubreddit string
}

func (f *stubFetcher) Search(ctx context.Context, query, timeframe, subreddit string) ([]types.RawPost, error) {
	f.gotQuery = query
	f.gotTimeframe = timeframe
	f.gotSubreddit = subreddit
	return f.posts, f.err
}

func newTestServer(f Fetcher) *Server {
	s := New(f)
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	return s
}

func doAnalyze(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeSuccess(t *testing.T) {
	fetcher := &stubFetcher{posts: []types.RawPost{
		{Title: "great secure wallet", Score: 9, CreatedUTC: 1699996400, Subreddit: "Bitcoin", Permalink: "/r/Bitcoin/comments/abc/"},
	}}
	s := newTestServer(fetcher)

	rec := doAnalyze(t, s, `{"query":"wallet"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var rep types.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, "wallet", rep.Query)
	assert.Equal(t, "week", rep.Timeframe, "omitted timeframe defaults")
	assert.Equal(t, "All", rep.Subreddit)
	assert.Equal(t, 1, rep.Stats.Total)
	assert.Equal(t, 1, rep.Stats.Benefits)

	assert.Equal(t, "week", fetcher.gotTimeframe)
	assert.Equal(t, "wallet", fetcher.gotQuery)
}

func TestAnalyzeRejectsMissingQuery(t *testing.T) {
	s := newTestServer(&stubFetcher{})
	rec := doAnalyze(t, s, `{"timeframe":"week"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "query is required")
}

func TestAnalyzeRejectsBadTimeframe(t *testing.T) {
	s := newTestServer(&stubFetcher{})
	rec := doAnalyze(t, s, `{"query":"btc","timeframe":"fortnight"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeRejectsBadJSON(t *testing.T) {
	s := newTestServer(&stubFetcher{})
	rec := doAnalyze(t, s, `{"query":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeRejectsWrongMethod(t *testing.T) {
	s := newTestServer(&stubFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAnalyzePropagatesUpstreamStatus(t *testing.T) {
	s := newTestServer(&stubFetcher{err: &reddit.StatusError{Code: http.StatusTooManyRequests}})
	rec := doAnalyze(t, s, `{"query":"btc"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAnalyzeMapsFetchFailureToServerError(t *testing.T) {
	s := newTestServer(&stubFetcher{err: errors.New("connection refused")})
	rec := doAnalyze(t, s, `{"query":"btc"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestAnalyzeMapsEmptyResultToNotFound(t *testing.T) {
	s := newTestServer(&stubFetcher{posts: nil})
	rec := doAnalyze(t, s, `{"query":"btc"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no results found")
}

func TestHealthz(t *testing.T) {
	s := newTestServer(&stubFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
