package search

import (
	"slices"
	"strings"
	"time"

	"github.com/poiesic/reasonit/core"
)

// DefaultLimit is the page size used when a query does not set Limit.
const DefaultLimit = 20

// Sort selects the ordering of search results.
type Sort string

const (
	// SortRelevance orders by text-match score, newest first on ties.
	SortRelevance Sort = "relevance"
	// SortDate orders by creation time, newest first.
	SortDate Sort = "date"
	// SortTitle orders by title ascending using a locale-aware comparator.
	SortTitle Sort = "title"
)

// ParseSort converts a sort name to a Sort. The empty string is valid and
// selects the default ordering.
func ParseSort(s string) (Sort, error) {
	switch Sort(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return "", nil
	case SortRelevance:
		return SortRelevance, nil
	case SortDate:
		return SortDate, nil
	case SortTitle:
		return SortTitle, nil
	default:
		return "", ErrUnknownSort
	}
}

// Query describes a search request. Every field is optional; an unset field
// places no constraint. Filters compose with logical AND.
//
// Two fields have alias spellings kept for caller convenience: QueryText is
// an alias for Text, and Mode is a single-value alias for Modes. Aliases are
// folded into the canonical fields before any filtering runs, and both
// spellings may be supplied at once: Text wins over QueryText, and Mode is
// merged into Modes.
type Query struct {
	// Text matches documents containing any token of the query text.
	// Empty or whitespace-only text places no constraint.
	Text string
	// QueryText is an alias for Text.
	QueryText string

	// Modes matches documents whose mode is a member of the set.
	Modes []core.Mode
	// Mode is a single-value alias for Modes.
	Mode core.Mode

	// Author matches by exact string equality.
	Author string
	// Domain matches by exact string equality.
	Domain string

	// TaxonomyCategories matches documents whose category set intersects
	// the requested set. Documents without a taxonomy never match.
	TaxonomyCategories []string
	// TaxonomyTypes matches like TaxonomyCategories against the type set.
	TaxonomyTypes []string

	// CreatedAfter matches documents with createdAt >= the threshold.
	CreatedAfter time.Time
	// CreatedBefore matches documents with createdAt < the threshold.
	CreatedBefore time.Time

	// Sort selects the result ordering. Unset means relevance when text is
	// present, insertion order otherwise.
	Sort Sort

	// Offset is the number of ordered results to skip. Defaults to 0.
	Offset int
	// Limit is the maximum page size. Defaults to DefaultLimit.
	Limit int

	// IncludeFacets requests facet counts over the filtered candidate set.
	IncludeFacets bool
}

// normalized folds alias spellings into the canonical fields and applies
// pagination defaults. It must run before any filter logic.
func (q Query) normalized(defaultLimit int) Query {
	if q.Text == "" {
		q.Text = q.QueryText
	}
	q.QueryText = ""

	if q.Mode != 0 && !slices.Contains(q.Modes, q.Mode) {
		q.Modes = append(slices.Clone(q.Modes), q.Mode)
	}
	q.Mode = 0

	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	return q
}

// hasText reports whether the query carries a text constraint.
func (q Query) hasText() bool {
	return strings.TrimSpace(q.Text) != ""
}
