package badger

import (
	"bytes"
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/reasonit/core"
	"github.com/poiesic/reasonit/storage"
)

// SessionRepository implements storage.SessionRepository for BadgerDB.
type SessionRepository struct {
	backend *Backend
}

var _ storage.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(backend *Backend) (*SessionRepository, error) {
	if backend == nil {
		return nil, storage.ErrStorageClosed
	}
	return &SessionRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *SessionRepository) Close() error {
	return nil
}

// WithTransaction executes a function within a transaction.
func (r *SessionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := fn(ctx); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// PutSessions stores sessions with replace semantics.
func (r *SessionRepository) PutSessions(ctx context.Context, sessions ...*core.Session) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, session := range sessions {
			now := time.Now().UTC()
			if session.CreatedAt.IsZero() {
				session.CreatedAt = now
			}
			session.UpdatedAt = now

			key := makeSessionKey(session.Id)

			// Drop the stale date-index entry when replacing a session
			// whose creation time changed.
			old, err := r.readSession(tx, key)
			if err != nil {
				return err
			}
			if old != nil && !old.CreatedAt.Equal(session.CreatedAt) {
				if err := tx.Delete(makeSessionDateKey(old.CreatedAt, old.Id)); err != nil {
					return err
				}
			}

			if err := tx.Set(key, storage.MarshalSession(session)); err != nil {
				return err
			}
			dateKey := makeSessionDateKey(session.CreatedAt, session.Id)
			if err := tx.Set(dateKey, storage.MarshalID(session.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetSession retrieves a single session by Id.
func (r *SessionRepository) GetSession(ctx context.Context, id core.ID) (*core.Session, error) {
	var session *core.Session
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		session, err = r.readSession(tx, makeSessionKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, storage.ErrNotFound
	}
	return session, nil
}

// GetSessions retrieves multiple sessions; missing Ids are skipped.
func (r *SessionRepository) GetSessions(ctx context.Context, ids ...core.ID) ([]*core.Session, error) {
	sessions := make([]*core.Session, 0, len(ids))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			session, err := r.readSession(tx, makeSessionKey(id))
			if err != nil {
				return err
			}
			if session != nil {
				sessions = append(sessions, session)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// DeleteSessions removes sessions by Id, failing on the first missing one.
func (r *SessionRepository) DeleteSessions(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeSessionKey(id)
			session, err := r.readSession(tx, key)
			if err != nil {
				return err
			}
			if session == nil {
				return storage.ErrNotFound
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
			if err := tx.Delete(makeSessionDateKey(session.CreatedAt, session.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetSessionsByDateRange retrieves sessions where start <= CreatedAt < end,
// ordered by creation time via the date index.
func (r *SessionRepository) GetSessionsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Session, error) {
	ids, err := r.dateRangeIDs(start, end)
	if err != nil {
		return nil, err
	}
	return r.GetSessions(ctx, ids...)
}

// GetRecentSessions retrieves up to limit sessions, most recent first.
func (r *SessionRepository) GetRecentSessions(ctx context.Context, limit int) ([]*core.Session, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}
	ids, err := r.dateRangeIDs(time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	// The date index is chronological; take the tail and reverse it.
	if len(ids) > limit {
		ids = ids[len(ids)-limit:]
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return r.GetSessions(ctx, ids...)
}

// CountSessions returns the number of stored sessions.
func (r *SessionRepository) CountSessions(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(sessionRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()
		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// dateRangeIDs walks the date index and returns the ids of sessions with
// start <= CreatedAt < end, in chronological order. Zero bounds mean
// unbounded on that side.
func (r *SessionRepository) dateRangeIDs(start, end time.Time) ([]core.ID, error) {
	var ids []core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(sessionDatePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		seek := opts.Prefix
		if !start.IsZero() {
			seek = makePartialSessionDateKey(start)
		}
		var stop []byte
		if !end.IsZero() {
			stop = makePartialSessionDateKey(end)
		}

		for iter.Seek(seek); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if stop != nil && bytes.Compare(key, stop) >= 0 {
				break
			}
			err := iter.Item().Value(func(val []byte) error {
				id, err := storage.UnmarshalID(val)
				if err != nil {
					return err
				}
				ids = append(ids, id)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// readSession reads and unmarshals a session, returning nil when absent.
func (r *SessionRepository) readSession(tx *badger.Txn, key []byte) (*core.Session, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}
	var session *core.Session
	err = item.Value(func(val []byte) error {
		var err error
		session, err = storage.UnmarshalSession(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}
