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

package reindex

import (
	"context"
	"time"

	"github.com/poiesic/reasonit/core"
	"github.com/poiesic/reasonit/storage"
)

const (
	// DefaultBatchSize is the default number of sessions to hand to the
	// engine in each batch.
	DefaultBatchSize = 100
)

// SessionIterator iterates over all stored sessions in batches.
type SessionIterator struct {
	repo      storage.SessionRepository
	batchSize int
}

// NewSessionIterator creates a new session iterator.
// batchSize: number of sessions per batch (must be > 0)
func NewSessionIterator(repo storage.SessionRepository, batchSize int) *SessionIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &SessionIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all sessions, calling fn for each batch.
// Iteration stops on the first error from fn or when all sessions are
// processed. Context cancellation is checked between batches.
func (it *SessionIterator) ForEach(ctx context.Context, fn func([]*core.Session) error) error {
	// Use a very wide date range to get all sessions
	startTime := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	endTime := time.Date(2100, 12, 31, 23, 59, 59, 0, time.UTC)

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	sessions, err := it.repo.GetSessionsByDateRange(ctx, startTime, endTime)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		return nil
	}

	for i := 0; i < len(sessions); i += it.batchSize {
		end := i + it.batchSize
		if end > len(sessions) {
			end = len(sessions)
		}

		if err := fn(sessions[i:end]); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
