package types

// Category is the closed set of sentiment buckets a post can land in.
// Unclassified means the post matched no lexicon and is dropped from
// every bucket (it still counts toward Stats.Total).
type Category int

const (
	Unclassified Category = iota
	Benefits
	PainPoints
	Suggestions
)

// Categories lists the real buckets in report order.
var Categories = []Category{Benefits, PainPoints, Suggestions}

func (c Category) String() string {
	switch c {
	case Benefits:
		return "benefits"
	case PainPoints:
		return "painPoints"
	case Suggestions:
		return "suggestions"
	default:
		return "unclassified"
	}
}
