// Command report runs one sentiment analysis batch from the terminal
// and writes the result to an Excel workbook.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"reddit-pulse-go/internal/aggregator"
	"reddit-pulse-go/internal/export"
	"reddit-pulse-go/internal/logger"
	"reddit-pulse-go/internal/reddit"
	"reddit-pulse-go/internal/types"
)

func main() {
	_ = godotenv.Load()

	query := flag.String("query", "", "search topic (required)")
	timeframe := flag.String("timeframe", types.DefaultTimeframe, "day|week|month|year|all")
	subreddit := flag.String("subreddit", "", "optional subreddit scope")
	out := flag.String("out", "report.xlsx", "output workbook path")
	flag.Parse()

	log := logger.New().WithField("command", "report")

	req := types.AnalyzeRequest{Query: *query, Timeframe: *timeframe, Subreddit: *subreddit}
	if err := req.Validate(); err != nil {
		log.WithError(err).Fatal("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := reddit.NewClient(os.Getenv("REDDIT_BASE_URL"))
	posts, err := client.Search(ctx, req.Query, req.Timeframe, req.Subreddit)
	if err != nil {
		log.WithError(err).Fatal("fetch failed")
	}

	report, err := aggregator.Aggregate(req.Query, req.Timeframe, req.Subreddit, posts, time.Now())
	if err != nil {
		log.WithError(err).Fatal("aggregation failed")
	}

	if err := export.Write(*out, report); err != nil {
		log.WithError(err).Fatal("export failed")
	}

	log.WithField("out", *out).
		WithField("total_posts", report.Stats.Total).
		WithField("benefits", report.Stats.Benefits).
		WithField("pain_points", report.Stats.PainPoints).
		WithField("suggestions", report.Stats.Suggestions).
		Info("report written")
}
