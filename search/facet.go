package search

import "github.com/poiesic/reasonit/core"

// Facets holds group-by counts computed over the filtered candidate set,
// before pagination. Documents with no author or no domain are omitted from
// the respective maps rather than counted under an empty key.
type Facets struct {
	Modes   map[core.Mode]int
	Authors map[string]int
	Domains map[string]int
}

// computeFacets aggregates mode, author, and domain counts.
func computeFacets(candidates []*document) *Facets {
	facets := &Facets{
		Modes:   make(map[core.Mode]int),
		Authors: make(map[string]int),
		Domains: make(map[string]int),
	}
	for _, doc := range candidates {
		facets.Modes[doc.mode]++
		if doc.author != "" {
			facets.Authors[doc.author]++
		}
		if doc.domain != "" {
			facets.Domains[doc.domain]++
		}
	}
	return facets
}
