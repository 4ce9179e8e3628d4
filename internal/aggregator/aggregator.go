// Package aggregator runs the categorization pipeline over a snapshot
// of fetched posts and assembles the final report: classify each post,
// bucket and rank the matches, and derive the per-category keyword
// clouds.
package aggregator

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"reddit-pulse-go/internal/classifier"
	"reddit-pulse-go/internal/keywords"
	"reddit-pulse-go/internal/lexicon"
	"reddit-pulse-go/internal/types"
)

// ErrNoResults signals that the fetch returned zero posts. The boundary
// surfaces it as a client-visible "no results" condition, distinct from
// a server failure.
var ErrNoResults = errors.New("no results found")

const (
	// linkBase is prefixed to post permalinks to form full URLs.
	linkBase = "https://reddit.com"

	// maxTitleLen is the display-text truncation threshold.
	maxTitleLen = 180

	// maxBucketSize caps each category bucket after ranking.
	maxBucketSize = 20
)

// Aggregate classifies every post and builds the report. now is passed
// in explicitly so relative time labels, and therefore whole reports,
// are deterministic for a fixed input.
//
// Unclassified posts are dropped from every bucket and cloud but still
// count toward Stats.Total. Stats per category count displayed items,
// i.e. after the top-20 truncation.
func Aggregate(query, timeframe, subreddit string, posts []types.RawPost, now time.Time) (*types.Report, error) {
	if len(posts) == 0 {
		return nil, ErrNoResults
	}

	buckets := map[types.Category][]types.CategorizedItem{}
	texts := map[types.Category][]string{}
	for _, c := range types.Categories {
		buckets[c] = []types.CategorizedItem{}
		texts[c] = nil
	}

	for _, p := range posts {
		full := p.Title + " " + p.Selftext
		cat := classifier.Classify(full)
		if cat == types.Unclassified {
			continue
		}
		buckets[cat] = append(buckets[cat], types.CategorizedItem{
			Text:      truncateTitle(p.Title),
			Subreddit: p.Subreddit,
			Score:     p.Score,
			Comments:  p.NumComments,
			TimeAgo:   timeAgo(now.Unix() - p.CreatedUTC),
			URL:       linkBase + p.Permalink,
		})
		texts[cat] = append(texts[cat], full)
	}

	for _, c := range types.Categories {
		b := buckets[c]
		sort.SliceStable(b, func(i, j int) bool { return b[i].Score > b[j].Score })
		if len(b) > maxBucketSize {
			b = b[:maxBucketSize]
		}
		buckets[c] = b
	}

	scope := subreddit
	if scope == "" {
		scope = "All"
	}

	return &types.Report{
		Query:     query,
		Timeframe: timeframe,
		Subreddit: scope,
		Stats: types.Stats{
			Total:       len(posts),
			Benefits:    len(buckets[types.Benefits]),
			PainPoints:  len(buckets[types.PainPoints]),
			Suggestions: len(buckets[types.Suggestions]),
		},
		Benefits:    buckets[types.Benefits],
		PainPoints:  buckets[types.PainPoints],
		Suggestions: buckets[types.Suggestions],
		Clouds: types.Clouds{
			Benefits:    keywords.Extract(texts[types.Benefits], lexicon.BenefitTerms),
			PainPoints:  keywords.Extract(texts[types.PainPoints], lexicon.PainTerms),
			Suggestions: keywords.Extract(texts[types.Suggestions], lexicon.SuggestionTerms),
		},
	}, nil
}

// truncateTitle keeps display text at maxTitleLen characters, marking
// longer titles with an ellipsis.
func truncateTitle(title string) string {
	if len(title) > maxTitleLen {
		return title[:maxTitleLen] + "..."
	}
	return title
}

// timeAgo renders elapsed seconds as a coarse relative label, largest
// unit first.
func timeAgo(elapsed int64) string {
	switch {
	case elapsed >= 31536000:
		return fmt.Sprintf("%dy ago", elapsed/31536000)
	case elapsed >= 2592000:
		return fmt.Sprintf("%dmo ago", elapsed/2592000)
	case elapsed >= 86400:
		return fmt.Sprintf("%dd ago", elapsed/86400)
	case elapsed >= 3600:
		return fmt.Sprintf("%dh ago", elapsed/3600)
	case elapsed >= 60:
		return fmt.Sprintf("%dm ago", elapsed/60)
	default:
		return "just now"
	}
}
