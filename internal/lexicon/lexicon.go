// Package lexicon holds the curated word lists driving sentiment
// categorization. The lists are fixed data, initialized once and never
// mutated; extending a category means adding a term here, not touching
// algorithm code.
package lexicon

import "reddit-pulse-go/internal/types"

// BenefitTerms signal positive sentiment.
var BenefitTerms = []string{
	"great", "awesome", "love", "excellent", "amazing", "best", "good",
	"helpful", "useful", "works", "easy", "fast", "reliable", "recommend",
	"fantastic", "perfect", "solid", "secure", "advantage", "benefit",
	"pro", "positive", "impressive", "brilliant", "wonderful", "efficient",
	"effective", "innovative", "convenient", "valuable", "worth", "success",
	"profit", "gains", "bullish", "potential",
}

// PainTerms signal negative sentiment.
var PainTerms = []string{
	"issue", "problem", "bad", "hate", "terrible", "awful", "worst",
	"broken", "slow", "expensive", "difficult", "hard", "confusing",
	"frustrating", "annoying", "bug", "error", "fail", "crash", "risk",
	"concern", "worry", "downside", "con", "negative", "disappointing",
	"useless", "waste", "scam", "avoid", "warning", "danger", "loss",
	"bearish", "volatile", "unstable", "complicated", "risky",
}

// SuggestionTerms signal recommendation or hedging language.
var SuggestionTerms = []string{
	"should", "could", "would", "suggest", "recommend", "try", "consider",
	"instead", "alternative", "better", "improve", "wish", "hope", "idea",
	"tip", "advice", "maybe", "perhaps", "option", "strategy", "approach",
	"solution", "fix", "upgrade", "switch", "check",
}

// StopWords are common function words and site-noise tokens suppressed
// during keyword extraction. Never consulted during classification.
var StopWords = newSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "up", "about", "into", "through", "during",
	"before", "after", "above", "below", "between", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why",
	"how", "all", "each", "few", "more", "most", "other", "some", "such",
	"no", "nor", "not", "only", "own", "same", "so", "than", "too", "very",
	"can", "will", "just", "should", "now", "i", "you", "he", "she", "it",
	"we", "they", "what", "which", "who", "this", "that", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being", "have", "has",
	"had", "having", "do", "does", "did", "doing", "would", "could",
	"might", "must", "shall", "as", "if", "because", "until", "while",
	"my", "your", "his", "her", "its", "our", "their", "me", "him", "us",
	"them", "get", "got", "like", "even", "also", "much", "many", "really",
	"actually", "basically", "probably", "maybe", "any", "dont", "doesnt",
	"im", "ive", "thats", "youre", "theyre", "wont", "cant", "didnt",
	"isnt", "arent", "wasnt", "werent", "havent", "hasnt", "hadnt",
	"wouldnt", "shouldnt", "couldnt", "cannot", "reddit", "http", "https",
	"www", "com", "org", "deleted", "removed",
)

// TermsFor returns the boost/classification list for a category.
// Unclassified has no lexicon and yields nil.
func TermsFor(c types.Category) []string {
	switch c {
	case types.Benefits:
		return BenefitTerms
	case types.PainPoints:
		return PainTerms
	case types.Suggestions:
		return SuggestionTerms
	default:
		return nil
	}
}

// IsStopWord reports whether a token should be dropped from keyword
// extraction.
func IsStopWord(token string) bool {
	_, ok := StopWords[token]
	return ok
}

func newSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
