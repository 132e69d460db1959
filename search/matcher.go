package search

import (
	"time"

	"github.com/poiesic/docstore/core"
)

// Matches reports whether a document satisfies a search request.
// The five sub-predicates are combined with logical AND; each defaults to
// true when its request field is nil or empty. A nil request matches every
// document.
//
// Title, content, and author fields of the document are assumed populated;
// passing a partially constructed document is a caller error.
func Matches(doc *core.Document, req *core.SearchRequest) bool {
	if req == nil {
		return true
	}
	return matchesTitlePrefixes(doc, req.TitlePrefixes) &&
		matchesContainsContents(doc, req.ContainsContents) &&
		matchesAuthorIds(doc, req.AuthorIds) &&
		matchesCreatedFrom(doc, req.CreatedFrom) &&
		matchesCreatedTo(doc, req.CreatedTo)
}

func matchesTitlePrefixes(doc *core.Document, titlePrefixes []string) bool {
	return len(titlePrefixes) == 0 || hasAnyPrefix(doc.Title, titlePrefixes)
}

func matchesContainsContents(doc *core.Document, containsContents []string) bool {
	return len(containsContents) == 0 || containsAny(doc.Content, containsContents)
}

func matchesAuthorIds(doc *core.Document, authorIds []string) bool {
	if len(authorIds) == 0 {
		return true
	}
	for _, id := range authorIds {
		if doc.Author.Id == id {
			return true
		}
	}
	return false
}

func matchesCreatedFrom(doc *core.Document, createdFrom *time.Time) bool {
	return createdFrom == nil || !doc.Created.Before(*createdFrom)
}

func matchesCreatedTo(doc *core.Document, createdTo *time.Time) bool {
	return createdTo == nil || !doc.Created.After(*createdTo)
}
