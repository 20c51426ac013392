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

package core

import (
	"fmt"
	"time"
)

// ValidateSession validates a Session according to domain rules.
//
// Generic rules:
//   - Id and Title must not be empty
//   - Mode must be a known value
//   - CreatedAt and UpdatedAt must not be in the future
//   - Every thought must pass ValidateThought
//   - A present Taxonomy must pass ValidateTaxonomy
//
// Mode-specific rules:
//   - Mathematical and Physics sessions require a Domain
//   - Dialectical sessions require at least two thoughts
func ValidateSession(session *Session) error {
	if session == nil {
		return fmt.Errorf("%w: session is nil", ErrInvalidSession)
	}

	if session.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSession, ErrEmptyID)
	}

	if session.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSession, ErrEmptyTitle)
	}

	if err := ValidateMode(session.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	if !IsValidTimestamp(session.CreatedAt) || !IsValidTimestamp(session.UpdatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidSession, ErrInvalidTimestamp)
	}

	for i := range session.Thoughts {
		if err := ValidateThought(&session.Thoughts[i]); err != nil {
			return fmt.Errorf("%w: thought %d: %w", ErrInvalidSession, i+1, err)
		}
	}

	if session.Taxonomy != nil {
		if err := ValidateTaxonomy(session.Taxonomy); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSession, err)
		}
	}

	return validateModeRules(session)
}

// validateModeRules applies the per-mode schema rules.
func validateModeRules(session *Session) error {
	switch session.Mode {
	case ModeMathematical, ModePhysics:
		if session.Domain == "" {
			return fmt.Errorf("%w: %s: %w", ErrInvalidSession, session.Mode, ErrMissingDomain)
		}
	case ModeDialectical:
		if len(session.Thoughts) < 2 {
			return fmt.Errorf("%w: %s: %w", ErrInvalidSession, session.Mode, ErrTooFewThoughts)
		}
	}
	return nil
}

// ValidateThought validates a Thought according to domain rules.
func ValidateThought(thought *Thought) error {
	if thought == nil {
		return fmt.Errorf("%w: thought is nil", ErrInvalidThought)
	}

	if thought.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidThought, ErrEmptyThoughtContent)
	}

	return nil
}

// ValidateTaxonomy validates a Taxonomy according to domain rules.
// Empty category and type sets are valid; empty strings within them are not.
func ValidateTaxonomy(taxonomy *Taxonomy) error {
	if taxonomy == nil {
		return fmt.Errorf("%w: taxonomy is nil", ErrInvalidTaxonomy)
	}

	for _, category := range taxonomy.Categories {
		if category == "" {
			return fmt.Errorf("%w: %w", ErrInvalidTaxonomy, ErrEmptyTaxonomyEntry)
		}
	}
	for _, typ := range taxonomy.Types {
		if typ == "" {
			return fmt.Errorf("%w: %w", ErrInvalidTaxonomy, ErrEmptyTaxonomyEntry)
		}
	}

	return nil
}

// ValidateMode validates that a Mode has a known value.
func ValidateMode(mode Mode) error {
	if _, ok := modeNames[mode]; !ok {
		return fmt.Errorf("%w: value %d", ErrUnknownMode, mode)
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
