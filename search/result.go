package search

import (
	"time"

	"github.com/poiesic/reasonit/core"
)

// Result is the envelope returned by Engine.Search.
type Result struct {
	// Sessions is the ordered, paginated page of matches. Entries are the
	// original session objects handed to IndexSession, not projections.
	Sessions []*core.Session

	// Total is the size of the filtered candidate set before pagination.
	Total int

	// Offset echoes the (normalized) requested offset.
	Offset int

	// HasMore reports whether results exist beyond this page.
	HasMore bool

	// Facets is present only when the query set IncludeFacets; a request
	// with facets over an empty result yields empty maps, not nil.
	Facets *Facets

	// ExecutionTime is the wall-clock duration of the full
	// filter, rank, paginate, facet sequence.
	ExecutionTime time.Duration
}
