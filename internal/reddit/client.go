// Package reddit fetches raw posts from the Reddit search API. It is
// the only component that talks to the network; everything downstream
// operates on the returned snapshot.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"reddit-pulse-go/internal/logger"
	"reddit-pulse-go/internal/types"
)

// DefaultBaseURL is the production search endpoint host.
const DefaultBaseURL = "https://www.reddit.com"

const (
	userAgent    = "RedditPulse/1.0"
	searchLimit  = 100
	httpTimeout  = 12 * time.Second
	maxRetryTime = 20 * time.Second
)

// StatusError reports a non-success upstream status so the boundary can
// propagate the code unchanged.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("reddit error: %d", e.Code)
}

// Client queries the Reddit search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client against baseURL; an empty baseURL selects
// the production endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

// Listing envelope as returned by search.json.
type listingResponse struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// redditPost mirrors the API fields we consume. created_utc arrives as
// a float and is narrowed to whole seconds.
type redditPost struct {
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	Subreddit   string  `json:"subreddit"`
	Permalink   string  `json:"permalink"`
}

// Search fetches posts matching query within the given timeframe,
// optionally scoped to one subreddit (a leading "r/" is accepted and
// stripped). Transient failures are retried with exponential backoff;
// 4xx responses are permanent and returned as *StatusError immediately.
func (c *Client) Search(ctx context.Context, query, timeframe, subreddit string) ([]types.RawPost, error) {
	log := logger.New().WithField("component", "reddit-client").
		WithField("query", query).
		WithField("timeframe", timeframe)

	endpoint := c.searchURL(query, timeframe, subreddit)
	log.WithField("url", endpoint).Info("fetching posts")

	var listing listingResponse
	var lastErr error

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			log.WithError(err).Warn("reddit request failed")
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = &StatusError{Code: resp.StatusCode}
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(lastErr)
			}
			log.WithField("http_status", resp.StatusCode).Warn("reddit non-success status")
			return lastErr
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			lastErr = err
			return err
		}
		if err := json.Unmarshal(body, &listing); err != nil {
			lastErr = fmt.Errorf("decode listing: %w", err)
			return backoff.Permanent(lastErr)
		}
		lastErr = nil
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxRetryTime

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, err
	}

	posts := make([]types.RawPost, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		d := child.Data
		posts = append(posts, types.RawPost{
			Title:       d.Title,
			Selftext:    d.Selftext,
			Score:       d.Score,
			NumComments: d.NumComments,
			CreatedUTC:  int64(d.CreatedUTC),
			Subreddit:   d.Subreddit,
			Permalink:   d.Permalink,
		})
	}
	log.WithField("post_count", len(posts)).Info("fetch complete")
	return posts, nil
}

func (c *Client) searchURL(query, timeframe, subreddit string) string {
	scope := ""
	if subreddit != "" {
		scope = "r/" + strings.TrimPrefix(subreddit, "r/") + "/"
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("sort", "relevance")
	q.Set("t", timeframe)
	q.Set("limit", fmt.Sprintf("%d", searchLimit))
	q.Set("raw_json", "1")
	return fmt.Sprintf("%s/%ssearch.json?%s", c.baseURL, scope, q.Encode())
}
