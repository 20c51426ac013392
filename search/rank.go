package search

import (
	"sort"

	"github.com/poiesic/reasonit/core"
)

// Relevance weights. A token found in the title also appears in the content
// token set, so a title hit scores titleWeight+contentWeight per token.
const (
	titleWeight   = 2
	contentWeight = 1
)

// rank sorts candidates in place according to the query's sort selection.
//
//   - SortDate: creation time descending.
//   - SortTitle: locale-aware title comparison, ascending.
//   - SortRelevance, or no sort with a text query: token score descending,
//     ties broken newest first, then by id.
//   - No sort and no text query: candidates keep their insertion order,
//     which is deterministic and stable across calls on an unchanged corpus.
func (e *Engine) rank(candidates []*document, q Query) {
	switch {
	case q.Sort == SortDate:
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if !a.createdAt.Equal(b.createdAt) {
				return a.createdAt.After(b.createdAt)
			}
			return a.id < b.id
		})
	case q.Sort == SortTitle:
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if cmp := e.collator.CompareString(a.title, b.title); cmp != 0 {
				return cmp < 0
			}
			return a.id < b.id
		})
	case q.Sort == SortRelevance || q.hasText():
		scores := scoreByTokens(candidates, q.Text)
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if scores[a.id] != scores[b.id] {
				return scores[a.id] > scores[b.id]
			}
			if !a.createdAt.Equal(b.createdAt) {
				return a.createdAt.After(b.createdAt)
			}
			return a.id < b.id
		})
	}
}

// scoreByTokens computes the relevance score of each candidate: the sum,
// per query token, of title and content presence weights.
func scoreByTokens(candidates []*document, text string) map[core.ID]int {
	tokens := Tokenize(text)
	scores := make(map[core.ID]int, len(candidates))
	for _, doc := range candidates {
		score := 0
		for _, token := range tokens {
			if _, ok := doc.titleTokens[token]; ok {
				score += titleWeight
			}
			if _, ok := doc.tokens[token]; ok {
				score += contentWeight
			}
		}
		scores[doc.id] = score
	}
	return scores
}
