package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"reddit-pulse-go/internal/types"
)

func TestTermsForMapsEveryCategory(t *testing.T) {
	assert.Equal(t, BenefitTerms, TermsFor(types.Benefits))
	assert.Equal(t, PainTerms, TermsFor(types.PainPoints))
	assert.Equal(t, SuggestionTerms, TermsFor(types.Suggestions))
	assert.Nil(t, TermsFor(types.Unclassified))
}

func TestTermsAreLowercaseAndNonEmpty(t *testing.T) {
	for _, list := range [][]string{BenefitTerms, PainTerms, SuggestionTerms} {
		for _, term := range list {
			assert.NotEmpty(t, term)
			assert.Equal(t, strings.ToLower(term), term, "term %q must be lowercase", term)
		}
	}
}

func TestStopWords(t *testing.T) {
	for _, w := range []string{"the", "and", "http", "reddit", "dont", "im", "deleted"} {
		assert.True(t, IsStopWord(w), "%q should be a stop word", w)
	}
	for _, w := range []string{"bitcoin", "wallet", "secure"} {
		assert.False(t, IsStopWord(w), "%q should not be a stop word", w)
	}
}
