package search

import (
	"slices"

	"github.com/poiesic/reasonit/core"
)

// filterFunc is a single predicate over a document projection.
type filterFunc func(*document) bool

// buildFilters compiles the structured filters of a normalized query into
// predicates. Unset query fields contribute no predicate. The text filter is
// not built here; it is resolved through the inverted index when the base
// candidate set is collected.
func buildFilters(q Query) []filterFunc {
	var filters []filterFunc

	if len(q.Modes) > 0 {
		modes := make(map[core.Mode]struct{}, len(q.Modes))
		for _, mode := range q.Modes {
			modes[mode] = struct{}{}
		}
		filters = append(filters, func(doc *document) bool {
			_, ok := modes[doc.mode]
			return ok
		})
	}

	if q.Author != "" {
		filters = append(filters, func(doc *document) bool {
			return doc.author == q.Author
		})
	}

	if q.Domain != "" {
		filters = append(filters, func(doc *document) bool {
			return doc.domain == q.Domain
		})
	}

	if len(q.TaxonomyCategories) > 0 {
		filters = append(filters, func(doc *document) bool {
			return doc.hasTaxonomy && intersects(doc.categories, q.TaxonomyCategories)
		})
	}

	if len(q.TaxonomyTypes) > 0 {
		filters = append(filters, func(doc *document) bool {
			return doc.hasTaxonomy && intersects(doc.types, q.TaxonomyTypes)
		})
	}

	if !q.CreatedAfter.IsZero() {
		filters = append(filters, func(doc *document) bool {
			// Inclusive lower bound.
			return !doc.createdAt.Before(q.CreatedAfter)
		})
	}

	if !q.CreatedBefore.IsZero() {
		filters = append(filters, func(doc *document) bool {
			// Exclusive upper bound.
			return doc.createdAt.Before(q.CreatedBefore)
		})
	}

	return filters
}

// applyFilters reduces candidates to the documents satisfying every filter.
func applyFilters(candidates []*document, filters []filterFunc) []*document {
	if len(filters) == 0 {
		return candidates
	}
	filtered := candidates[:0:0]
	for _, doc := range candidates {
		if matchesAll(doc, filters) {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}

func matchesAll(doc *document, filters []filterFunc) bool {
	for _, filter := range filters {
		if !filter(doc) {
			return false
		}
	}
	return true
}

// intersects reports whether the two string sets share at least one element.
func intersects(have, want []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}
