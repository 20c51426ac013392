package reindex

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/reasonit/core"
	"github.com/poiesic/reasonit/search"
	"github.com/poiesic/reasonit/storage"
)

// Rebuilder repopulates a search engine from a session repository.
type Rebuilder struct {
	repo           storage.SessionRepository
	batchSize      int
	progressWriter io.Writer
	reportInterval int
	logger         *slog.Logger
}

// Option configures a Rebuilder.
type Option func(*Rebuilder) error

// WithBatchSize sets the number of sessions fetched per batch.
// Default is DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(r *Rebuilder) error {
		if size > 0 {
			r.batchSize = size
		}
		return nil
	}
}

// WithProgress enables progress reporting to w every interval sessions.
func WithProgress(w io.Writer, interval int) Option {
	return func(r *Rebuilder) error {
		r.progressWriter = w
		r.reportInterval = interval
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Rebuilder) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRebuilder creates a new rebuilder reading from repo.
func NewRebuilder(repo storage.SessionRepository, opts ...Option) (*Rebuilder, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	r := &Rebuilder{
		repo:      repo,
		batchSize: DefaultBatchSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Rebuild clears the engine and re-indexes every stored session.
//
// Batches are applied through a single-worker pool so the engine only ever
// sees one writer, while the calling goroutine stays free to fetch the next
// batch from storage. Returns the number of sessions indexed.
func (r *Rebuilder) Rebuild(ctx context.Context, engine *search.Engine) (int, error) {
	if engine == nil {
		return 0, ErrEngineRequired
	}

	engine.Clear()

	total, err := r.repo.CountSessions(ctx)
	if err != nil {
		return 0, err
	}

	tracker := NewProgressTracker(r.progressWriter, total, r.reportInterval)
	tracker.Start()

	// Exactly one worker: the engine has no internal locking.
	pool, err := ants.NewPool(1)
	if err != nil {
		return 0, err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	count := 0

	iter := NewSessionIterator(r.repo, r.batchSize)
	err = iter.ForEach(ctx, func(batch []*core.Session) error {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			for _, session := range batch {
				engine.IndexSession(session)
			}
			tracker.Increment(len(batch))
		})
		if submitErr != nil {
			wg.Done()
			return submitErr
		}
		count += len(batch)
		return nil
	})

	wg.Wait()
	tracker.Finish()

	if err != nil {
		return 0, err
	}

	r.logger.Info("index rebuilt", "sessions", count)
	return count, nil
}
