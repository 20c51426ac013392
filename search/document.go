package search

import (
	"slices"
	"time"

	"github.com/poiesic/reasonit/core"
)

// document is the engine's index-ready projection of a session: identifiers,
// token sets, categorical fields, and timestamps. It is immutable once built;
// re-indexing a session produces a fresh projection.
type document struct {
	id          core.ID
	title       string
	mode        core.Mode
	author      string
	domain      string
	categories  []string // nil when the session has no taxonomy
	types       []string // nil when the session has no taxonomy
	hasTaxonomy bool
	tags        []string
	createdAt   time.Time
	updatedAt   time.Time

	titleTokens map[string]struct{} // tokens from the title only
	tokens      map[string]struct{} // tokens from title plus all thought contents

	fingerprint uint64
	session     *core.Session // the original session, returned verbatim in results
}

// newDocument projects a session into its indexable surface. The projection
// copies the categorical fields so later mutation of the session cannot skew
// the index; the session pointer itself is retained only to hand back full
// originals in search results.
func newDocument(session *core.Session) *document {
	doc := &document{
		id:          session.Id,
		title:       session.Title,
		mode:        session.Mode,
		author:      session.Author,
		domain:      session.Domain,
		tags:        slices.Clone(session.Tags),
		createdAt:   session.CreatedAt,
		updatedAt:   session.UpdatedAt,
		titleTokens: tokenSet(session.Title),
		tokens:      tokenSet(session.ContentText()),
		fingerprint: core.FingerprintSession(session),
		session:     session,
	}
	if session.Taxonomy != nil {
		doc.hasTaxonomy = true
		doc.categories = slices.Clone(session.Taxonomy.Categories)
		doc.types = slices.Clone(session.Taxonomy.Types)
	}
	return doc
}
