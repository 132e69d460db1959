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

import "fmt"

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Content must not be empty
//   - Author Id must not be empty
//
// NOT validated (populated by the repository):
//   - Id (empty is valid; the repository assigns one on save)
//   - Created (zero is valid; the repository assigns it on save)
//
// The repository itself never validates: save accepts any non-nil document.
// Validation is for ingestion paths that want to reject malformed input
// before it reaches storage.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyTitle)
	}

	if doc.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyContent)
	}

	if doc.Author.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyAuthorId)
	}

	return nil
}

// ValidateSearchRequest validates a SearchRequest according to domain rules.
//
// Validation rules:
//   - CreatedFrom must not be after CreatedTo when both are set
//
// The searcher itself accepts any request (an inverted range simply matches
// nothing); validation exists so callers can reject nonsensical input early.
func ValidateSearchRequest(req *SearchRequest) error {
	if req == nil {
		return nil
	}

	if req.CreatedFrom != nil && req.CreatedTo != nil && req.CreatedFrom.After(*req.CreatedTo) {
		return fmt.Errorf("%w: %w", ErrInvalidSearchRequest, ErrInvertedDateRange)
	}

	return nil
}
