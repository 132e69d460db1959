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


// Package search provides multi-criteria predicate search over stored documents.
//
// The predicate engine (Matches) combines five independent optional filters
// with AND semantics:
//   - title prefix match (OR across listed prefixes)
//   - content substring match (OR across listed substrings)
//   - author id set membership
//   - inclusive creation-time lower bound
//   - inclusive creation-time upper bound
//
// An absent or empty filter imposes no constraint. The Searcher applies the
// engine to every stored document via a full scan; results come back in
// arbitrary order with no pagination.
package search
