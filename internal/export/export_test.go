package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"reddit-pulse-go/internal/types"
)

func TestWriteRoundTrip(t *testing.T) {
	rep := &types.Report{
		Query:     "wallet",
		Timeframe: "week",
		Subreddit: "All",
		Stats:     types.Stats{Total: 3, Benefits: 1, PainPoints: 1, Suggestions: 0},
		Benefits: []types.CategorizedItem{
			{Text: "great wallet", Subreddit: "Bitcoin", Score: 9, Comments: 2, TimeAgo: "2h ago", URL: "https://reddit.com/r/Bitcoin/comments/abc/"},
		},
		PainPoints: []types.CategorizedItem{
			{Text: "broken firmware", Subreddit: "Bitcoin", Score: 4, Comments: 11, TimeAgo: "1d ago", URL: "https://reddit.com/r/Bitcoin/comments/def/"},
		},
		Suggestions: []types.CategorizedItem{},
		Clouds: types.Clouds{
			Benefits:    []types.KeywordEntry{{Text: "secure", Count: 3}},
			PainPoints:  []types.KeywordEntry{{Text: "firmware", Count: 2}},
			Suggestions: []types.KeywordEntry{},
		},
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, Write(path, rep))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.ElementsMatch(t, []string{"Summary", "Benefits", "Pain Points", "Suggestions", "Keywords"}, sheets)

	query, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "wallet", query)

	total, err := f.GetCellValue("Summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "3", total)

	title, err := f.GetCellValue("Benefits", "A2")
	require.NoError(t, err)
	assert.Equal(t, "great wallet", title)

	keyword, err := f.GetCellValue("Keywords", "B2")
	require.NoError(t, err)
	assert.Equal(t, "secure", keyword)
}
