// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reasonit

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/poiesic/reasonit/core"
	"github.com/poiesic/reasonit/export"
	"github.com/poiesic/reasonit/reindex"
	"github.com/poiesic/reasonit/search"
	"github.com/poiesic/reasonit/storage"
	"github.com/poiesic/reasonit/storage/badger"
)

// Library ties the session repository and the search engine together.
//
// The repository is the system of record; the engine holds a derived index
// rebuilt from storage on open. Every mutation writes through to both, and
// one mutex serializes engine access: the engine itself is single-threaded,
// and a read interleaved with a partial re-index could observe an
// inconsistent token set.
type Library struct {
	backend  *badger.Backend
	sessions storage.SessionRepository
	engine   *search.Engine
	mu       sync.Mutex
	logger   *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	engineOpts  []search.Option
	rebuildOpts []reindex.Option
}

// WithEngineOptions forwards options to the search engine constructor.
func WithEngineOptions(opts ...search.Option) LibraryOption {
	return func(o *libraryOptions) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// WithRebuildOptions forwards options to the index rebuilder used on open
// and by Reindex.
func WithRebuildOptions(opts ...reindex.Option) LibraryOption {
	return func(o *libraryOptions) {
		o.rebuildOpts = append(o.rebuildOpts, opts...)
	}
}

// OpenLibrary opens (or creates) a session library at filePath and rebuilds
// the search index from the stored sessions.
func OpenLibrary(filePath string, opts ...LibraryOption) (*Library, error) {
	return openLibrary(filePath, false, opts...)
}

// OpenMemoryLibrary opens an in-memory library, useful for tests.
func OpenMemoryLibrary(opts ...LibraryOption) (*Library, error) {
	return openLibrary("", true, opts...)
}

func openLibrary(filePath string, inMemory bool, opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	sessions, err := badger.NewSessionRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	engine, err := search.NewEngine(options.engineOpts...)
	if err != nil {
		sessions.Close()
		backend.Close()
		return nil, err
	}

	lib := &Library{
		backend:  backend,
		sessions: sessions,
		engine:   engine,
		logger:   slog.Default(),
	}

	if _, err := lib.rebuild(context.Background(), options.rebuildOpts...); err != nil {
		lib.Close()
		return nil, err
	}

	return lib, nil
}

// Close closes the repository and the underlying backend.
func (l *Library) Close() error {
	if err := l.sessions.Close(); err != nil {
		l.logger.Error("error closing session repository", "err", err)
		return err
	}
	if err := l.backend.Close(); err != nil {
		l.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// SessionRepository exposes the underlying repository.
func (l *Library) SessionRepository() storage.SessionRepository {
	return l.sessions
}

// AddSession validates and stores a session, then indexes it. Sessions
// without an Id are assigned one; the stored session (with timestamps
// populated) is returned.
func (l *Library) AddSession(ctx context.Context, session *core.Session) (*core.Session, error) {
	if session != nil && session.Id == "" {
		session.Id = core.NewID()
	}
	if err := core.ValidateSession(session); err != nil {
		return nil, err
	}
	if err := l.sessions.PutSessions(ctx, session); err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.engine.IndexSession(session)
	l.mu.Unlock()

	return session, nil
}

// UpdateSession replaces an existing session in storage and re-indexes it.
// Returns storage.ErrNotFound if the session does not exist.
func (l *Library) UpdateSession(ctx context.Context, session *core.Session) (*core.Session, error) {
	if err := core.ValidateSession(session); err != nil {
		return nil, err
	}
	if _, err := l.sessions.GetSession(ctx, session.Id); err != nil {
		return nil, err
	}
	if err := l.sessions.PutSessions(ctx, session); err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.engine.UpdateSession(session)
	l.mu.Unlock()

	return session, nil
}

// DeleteSession removes a session from storage and from the index.
// Returns storage.ErrNotFound if the session does not exist.
func (l *Library) DeleteSession(ctx context.Context, id core.ID) error {
	if err := l.sessions.DeleteSessions(ctx, id); err != nil {
		return err
	}

	l.mu.Lock()
	l.engine.RemoveSession(id)
	l.mu.Unlock()

	return nil
}

// GetSession retrieves a session by Id.
func (l *Library) GetSession(ctx context.Context, id core.ID) (*core.Session, error) {
	return l.sessions.GetSession(ctx, id)
}

// Search runs a query against the index.
func (l *Library) Search(query search.Query) *search.Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Search(query)
}

// Reindex rebuilds the search index from storage and returns the number of
// sessions indexed.
func (l *Library) Reindex(ctx context.Context, opts ...reindex.Option) (int, error) {
	return l.rebuild(ctx, opts...)
}

func (l *Library) rebuild(ctx context.Context, opts ...reindex.Option) (int, error) {
	rebuilder, err := reindex.NewRebuilder(l.sessions, opts...)
	if err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return rebuilder.Rebuild(ctx, l.engine)
}

// Export writes every stored session to w in the named format
// ("json", "yaml", or "markdown"), most recent first.
func (l *Library) Export(ctx context.Context, w io.Writer, format string) error {
	formatter, err := export.NewFormatter(format)
	if err != nil {
		return err
	}

	count, err := l.sessions.CountSessions(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		return formatter.Format(w, nil)
	}

	sessions, err := l.sessions.GetRecentSessions(ctx, count)
	if err != nil {
		return err
	}
	return formatter.Format(w, sessions)
}

// Backup streams a full backup of the underlying database to w.
func (l *Library) Backup(w io.Writer) error {
	return l.backend.Backup(w)
}

// Restore loads a backup stream into the database and rebuilds the index.
func (l *Library) Restore(ctx context.Context, r io.Reader) error {
	if err := l.backend.Restore(r); err != nil {
		return err
	}
	_, err := l.rebuild(ctx)
	return err
}
