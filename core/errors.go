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

import "errors"

// Domain validation errors
var (
	// ErrInvalidSession indicates a Session failed validation.
	ErrInvalidSession = errors.New("invalid session")

	// ErrInvalidThought indicates a Thought failed validation.
	ErrInvalidThought = errors.New("invalid thought")

	// ErrInvalidTaxonomy indicates a Taxonomy failed validation.
	ErrInvalidTaxonomy = errors.New("invalid taxonomy")

	// ErrEmptyID indicates the session Id field is empty.
	ErrEmptyID = errors.New("session id cannot be empty")

	// ErrEmptyTitle indicates the session Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyThoughtContent indicates a thought Content field is empty.
	ErrEmptyThoughtContent = errors.New("thought content cannot be empty")

	// ErrUnknownMode indicates an unrecognized Mode value or name.
	ErrUnknownMode = errors.New("unknown reasoning mode")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrMissingDomain indicates a mode that requires a domain lacks one.
	ErrMissingDomain = errors.New("domain is required for this mode")

	// ErrTooFewThoughts indicates a mode's minimum thought count is not met.
	ErrTooFewThoughts = errors.New("too few thoughts for this mode")

	// ErrEmptyTaxonomyEntry indicates a taxonomy category or type is empty.
	ErrEmptyTaxonomyEntry = errors.New("taxonomy entries cannot be empty")
)
