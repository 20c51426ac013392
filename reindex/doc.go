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


// Package reindex rebuilds a search engine's index from a session
// repository.
//
// The search index is derived state and is not persisted; it is
// reconstructed from storage whenever a library is opened. The Rebuilder
// streams sessions out of the repository in batches and applies them to the
// engine through a single-worker pool, overlapping storage reads with
// indexing while preserving the engine's single-writer requirement.
package reindex
