// Package classifier assigns a single sentiment category to a piece of
// post text by lexical scoring. Deliberately transparent and
// deterministic: no model, just substring matches against the curated
// lexicons.
package classifier

import (
	"strings"

	"reddit-pulse-go/internal/lexicon"
	"reddit-pulse-go/internal/types"
)

// Classify scores text against the three lexicons and returns the
// winning category, or Unclassified when there is no signal.
//
// Scoring counts how many distinct lexicon terms appear anywhere in the
// lowercased text (substring containment, not word boundaries). The
// tie-break is asymmetric on purpose: benefits or pain points must
// strictly beat each other to win, so an exact benefit/pain tie with a
// lower suggestion count classifies as nothing at all. That matches the
// long-standing production behavior and changing it would reshuffle
// every report.
func Classify(text string) types.Category {
	t := strings.ToLower(text)

	b := countMatches(t, lexicon.BenefitTerms)
	p := countMatches(t, lexicon.PainTerms)
	s := countMatches(t, lexicon.SuggestionTerms)

	max := b
	if p > max {
		max = p
	}
	if s > max {
		max = s
	}
	if max == 0 {
		return types.Unclassified
	}

	switch {
	case b == max && b > p:
		return types.Benefits
	case p == max && p > b:
		return types.PainPoints
	case s == max:
		return types.Suggestions
	default:
		return types.Unclassified
	}
}

func countMatches(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}
