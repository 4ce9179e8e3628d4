// Package keywords builds the ranked keyword cloud for a category from
// its accumulated post text.
package keywords

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"reddit-pulse-go/internal/lexicon"
	"reddit-pulse-go/internal/types"
)

// MaxKeywords caps the size of a returned cloud.
const MaxKeywords = 25

// boostFactor upweights tokens that belong to the category's own lexicon.
const boostFactor = 1.5

var tokenRe = regexp.MustCompile(`[a-z]{3,}`)

// Extract tokenizes the given texts, drops stop words, counts token
// frequency, boosts tokens found in boost, and returns the top
// MaxKeywords entries sorted by count descending. Ties keep
// first-encounter order. An input with no surviving tokens yields an
// empty (non-nil) slice.
func Extract(texts []string, boost []string) []types.KeywordEntry {
	all := strings.ToLower(strings.Join(texts, " "))

	// counts is paired with order so ranking stays stable on ties:
	// tokens are ranked in the order they were first seen.
	counts := make(map[string]int)
	var order []string
	for _, tok := range tokenRe.FindAllString(all, -1) {
		if lexicon.IsStopWord(tok) {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	for _, term := range boost {
		if c, ok := counts[term]; ok && c > 0 {
			counts[term] = int(math.Round(float64(c) * boostFactor))
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	n := len(order)
	if n > MaxKeywords {
		n = MaxKeywords
	}
	out := make([]types.KeywordEntry, 0, n)
	for _, tok := range order[:n] {
		out = append(out, types.KeywordEntry{Text: tok, Count: counts[tok]})
	}
	return out
}
