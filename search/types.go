package search

// DefaultLimit caps a search when the caller leaves Limit unset. The suggest
// controller uses its own smaller limit for inline results.
const DefaultLimit = 20

// Highlight markers wrapped around matched substrings in formatted hits.
const (
	HighlightPreTag  = "<mark>"
	HighlightPostTag = "</mark>"
)

// Request is one full-text query against the product index. Locale is always
// applied as a filter; Category optionally narrows to one category slug.
type Request struct {
	Query    string
	Locale   string
	Limit    int
	Offset   int
	Category string
}

// Hit is one matching document in relevance order. The client never re-ranks.
type Hit struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	Slug             string        `json:"slug"`
	ShortDescription *string       `json:"shortDescription"`
	ModelNumber      *string       `json:"modelNumber"`
	Category         *string       `json:"category"`
	CategorySlug     *string       `json:"categorySlug"`
	Locale           string        `json:"locale"`
	Formatted        *HitFormatted `json:"_formatted,omitempty"`
}

// HitFormatted carries the highlighted fragments for the fields highlighting
// was requested on.
type HitFormatted struct {
	Name             string  `json:"name"`
	ShortDescription *string `json:"shortDescription"`
}

// Result is one page of hits plus result-set metadata. TotalHits is the
// service's estimate, not necessarily exact.
type Result struct {
	Hits             []Hit
	TotalHits        int64
	ProcessingTimeMs int64
}
