package storage

import (
	"context"
	"time"

	"github.com/poiesic/reasonit/core"
)

// SessionRepository provides operations for persisting reasoning sessions.
// Implementations must be thread-safe and support concurrent access.
//
// The repository is the system of record; the search engine holds only a
// derived index. Callers that mutate the repository are responsible for
// telling the engine (see reasonit.Library, which keeps both in sync).
type SessionRepository interface {
	// PutSessions stores one or more sessions with replace semantics:
	// an existing session with the same Id is overwritten.
	// Sets CreatedAt/UpdatedAt timestamps if not already set.
	PutSessions(ctx context.Context, sessions ...*core.Session) error

	// GetSession retrieves a single session by Id.
	// Returns ErrNotFound if the session doesn't exist.
	GetSession(ctx context.Context, id core.ID) (*core.Session, error)

	// GetSessions retrieves multiple sessions by their Ids.
	// Returns only the sessions that exist (no error for missing ones).
	GetSessions(ctx context.Context, ids ...core.ID) ([]*core.Session, error)

	// DeleteSessions removes sessions by their Ids.
	// Returns ErrNotFound if any session doesn't exist.
	DeleteSessions(ctx context.Context, ids ...core.ID) error

	// GetSessionsByDateRange retrieves sessions within a time range.
	// Returns sessions where start <= CreatedAt < end, ordered by creation time.
	GetSessionsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Session, error)

	// GetRecentSessions retrieves up to limit sessions ordered by creation
	// time descending.
	GetRecentSessions(ctx context.Context, limit int) ([]*core.Session, error)

	// CountSessions returns the number of stored sessions.
	CountSessions(ctx context.Context) (int, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}
