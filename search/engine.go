package search

import (
	"log/slog"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/poiesic/reasonit/core"
)

// Engine indexes reasoning sessions and answers search queries over them.
//
// The engine owns two derived structures kept mutually consistent: a
// document store (id to latest projection) and an inverted index (token to
// the set of document ids containing it). Indexing the same id again is a
// full replace: the previous version's tokens are removed before the new
// projection's tokens are inserted.
//
// All methods are synchronous and complete fully before returning. The
// engine performs no internal locking; see the package documentation.
type Engine struct {
	docs  map[core.ID]*document
	index map[string]map[core.ID]struct{}

	// order records insertion order so that queries without a sort and
	// without text return a deterministic, stable ordering.
	order []core.ID

	collator     *collate.Collator
	defaultLimit int
	logger       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithDefaultLimit sets the page size used when a query does not set Limit.
// Default is DefaultLimit.
func WithDefaultLimit(limit int) Option {
	return func(e *Engine) error {
		if limit <= 0 {
			return ErrInvalidLimit
		}
		e.defaultLimit = limit
		return nil
	}
}

// WithLanguage sets the collation language for title sorting.
// Default is language.English.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) error {
		e.collator = collate.New(tag)
		return nil
	}
}

// NewEngine creates an empty engine.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		docs:         make(map[core.ID]*document),
		index:        make(map[string]map[core.ID]struct{}),
		collator:     collate.New(language.English),
		defaultLimit: DefaultLimit,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Len returns the number of live documents.
func (e *Engine) Len() int {
	return len(e.docs)
}

// Clear removes every document and index entry, returning the engine to its
// freshly constructed state.
func (e *Engine) Clear() {
	e.docs = make(map[core.ID]*document)
	e.index = make(map[string]map[core.ID]struct{})
	e.order = e.order[:0]
}

// IndexSession projects the session and stores it under replace semantics:
// any previous document with the same id, along with its index entries, is
// removed first. A nil session is ignored. Re-indexing content that hashes
// to the same fingerprint only refreshes the stored session pointer.
func (e *Engine) IndexSession(session *core.Session) {
	if session == nil {
		return
	}

	doc := newDocument(session)
	if old, ok := e.docs[doc.id]; ok {
		if old.fingerprint == doc.fingerprint {
			// Identical searchable content; keep index entries and order.
			e.docs[doc.id] = doc
			return
		}
		e.removeTokens(old)
		// A replaced document keeps its original insertion position.
	} else {
		e.order = append(e.order, doc.id)
	}

	e.docs[doc.id] = doc
	e.insertTokens(doc)
}

// UpdateSession is an alias for IndexSession with the same replace contract.
func (e *Engine) UpdateSession(session *core.Session) {
	e.IndexSession(session)
}

// RemoveSession removes the document and its index entries.
// Removing an absent id is a no-op.
func (e *Engine) RemoveSession(id core.ID) {
	doc, ok := e.docs[id]
	if !ok {
		return
	}
	e.removeTokens(doc)
	delete(e.docs, id)
	if i := slices.Index(e.order, id); i >= 0 {
		e.order = slices.Delete(e.order, i, i+1)
	}
}

func (e *Engine) insertTokens(doc *document) {
	for token := range doc.tokens {
		ids, ok := e.index[token]
		if !ok {
			ids = make(map[core.ID]struct{})
			e.index[token] = ids
		}
		ids[doc.id] = struct{}{}
	}
}

func (e *Engine) removeTokens(doc *document) {
	for token := range doc.tokens {
		ids, ok := e.index[token]
		if !ok {
			continue
		}
		delete(ids, doc.id)
		if len(ids) == 0 {
			delete(e.index, token)
		}
	}
}

// Search runs the query through normalization, the filter pipeline, ranking,
// pagination, and optional facet aggregation. It is a total function: every
// documented input yields a well-defined result, never an error.
func (e *Engine) Search(query Query) *Result {
	return e.SearchWithMonitor(query, nil)
}

// SearchWithMonitor runs Search with observation hooks at each stage.
func (e *Engine) SearchWithMonitor(query Query, monitor SearchMonitor) *Result {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	start := time.Now()
	q := query.normalized(e.defaultLimit)
	monitor.Start(q)

	candidates := e.collectCandidates(q)
	monitor.AfterCandidates(len(candidates))

	candidates = applyFilters(candidates, buildFilters(q))
	monitor.AfterFilter(len(candidates))

	e.rank(candidates, q)
	monitor.AfterRank(documentIDs(candidates))

	total := len(candidates)
	page := paginate(candidates, q.Offset, q.Limit)

	var facets *Facets
	if q.IncludeFacets {
		facets = computeFacets(candidates)
	}

	sessions := make([]*core.Session, len(page))
	for i, doc := range page {
		sessions[i] = doc.session
	}

	result := &Result{
		Sessions:      sessions,
		Total:         total,
		Offset:        q.Offset,
		HasMore:       q.Offset+len(page) < total,
		Facets:        facets,
		ExecutionTime: time.Since(start),
	}
	monitor.Finish(result)
	return result
}

// collectCandidates builds the base candidate set. With a text constraint it
// resolves the union of the inverted-index id sets for the query tokens, so
// cost is proportional to the matching documents; otherwise it scans the
// document store once in insertion order.
func (e *Engine) collectCandidates(q Query) []*document {
	if !q.hasText() {
		all := make([]*document, 0, len(e.order))
		for _, id := range e.order {
			all = append(all, e.mustDocument(id))
		}
		return all
	}

	matched := make(map[core.ID]struct{})
	for _, token := range Tokenize(q.Text) {
		for id := range e.index[token] {
			matched[id] = struct{}{}
		}
	}

	candidates := make([]*document, 0, len(matched))
	for id := range matched {
		candidates = append(candidates, e.mustDocument(id))
	}
	return candidates
}

// mustDocument panics on a dangling index entry: that can only mean the
// replace-on-reindex bookkeeping is broken, which is a bug, not bad input.
func (e *Engine) mustDocument(id core.ID) *document {
	doc, ok := e.docs[id]
	if !ok {
		panic("search: index references missing document " + string(id))
	}
	return doc
}

// paginate slices the ordered candidates, clipping to bounds. An offset past
// the end yields an empty page.
func paginate(ordered []*document, offset, limit int) []*document {
	if offset >= len(ordered) {
		return nil
	}
	end := offset + limit
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[offset:end]
}

func documentIDs(docs []*document) []core.ID {
	ids := make([]core.ID, len(docs))
	for i, doc := range docs {
		ids[i] = doc.id
	}
	return ids
}
