package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Author identifies the writer of a document.
// Authors are immutable values embedded in documents; they have no lifecycle
// of their own.
type Author struct {
	Id   string
	Name string
}

// Document is the unit of storage. Id is assigned by the repository when
// empty on save; Created is always assigned by the repository at save time.
type Document struct {
	Id      string
	Title   string
	Content string
	Author  Author
	Created time.Time // When the document was saved (reset on every save)
}

// SearchRequest describes a conjunctive filter over stored documents.
// Every field is optional: a nil or empty field imposes no constraint.
type SearchRequest struct {
	TitlePrefixes    []string   // Match titles starting with any listed prefix
	ContainsContents []string   // Match contents containing any listed substring
	AuthorIds        []string   // Match documents whose author id is in the set
	CreatedFrom      *time.Time // Inclusive lower bound on Created
	CreatedTo        *time.Time // Inclusive upper bound on Created
}

// Fingerprint generates a deterministic hex fingerprint of document text
// using BLAKE2b hashing. Identical title/content pairs produce identical
// fingerprints.
func Fingerprint(title, content string) string {
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(title))
	h.Write([]byte{0})
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}
