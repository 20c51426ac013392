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


// Package search provides an in-memory search and indexing engine for
// reasoning sessions.
//
// The Engine type maintains an inverted index (token to document ids) and a
// document store (id to projection) kept consistent under replace-on-reindex
// semantics. Queries combine free-text token matching with structured
// filters (mode, author, domain, taxonomy, date range), deterministic
// ranking, faceted counts, and pagination.
//
// The engine is synchronous and single-threaded: callers embedding it in a
// concurrent host must serialize both mutation and read operations behind
// one mutual-exclusion boundary, as the root reasonit.Library does.
package search
