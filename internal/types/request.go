package types

import "fmt"

// DefaultTimeframe is applied when the caller omits the timeframe.
const DefaultTimeframe = "week"

var validTimeframes = map[string]bool{
	"day":   true,
	"week":  true,
	"month": true,
	"year":  true,
	"all":   true,
}

// AnalyzeRequest is the inbound request for a sentiment analysis run.
type AnalyzeRequest struct {
	Query     string `json:"query"`
	Timeframe string `json:"timeframe"`
	Subreddit string `json:"subreddit"`
}

// Validate checks the request and fills in the default timeframe.
func (r *AnalyzeRequest) Validate() error {
	if r.Query == "" {
		return fmt.Errorf("query is required")
	}
	if r.Timeframe == "" {
		r.Timeframe = DefaultTimeframe
	}
	if !validTimeframes[r.Timeframe] {
		return fmt.Errorf("invalid timeframe %q (want day|week|month|year|all)", r.Timeframe)
	}
	return nil
}
