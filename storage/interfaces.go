package storage

import (
	"context"
	"time"

	"github.com/poiesic/docstore/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for managing documents.
type DocumentRepository interface {
	Repository

	// SaveDocument upserts a document.
	// For documents with an empty Id, generates a new id from the sequence:
	// decimal strings "1", "2", ..., strictly increasing per repository.
	// A non-empty Id overwrites any existing record with that id.
	// Created is always set to the current time, including on overwrite.
	// Returns the document with Id and Created populated.
	SaveDocument(ctx context.Context, doc *core.Document) (*core.Document, error)

	// GetDocument retrieves a single document by id.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id string) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their ids.
	// Returns only the documents that exist (no error for missing documents).
	GetDocuments(ctx context.Context, ids ...string) ([]*core.Document, error)

	// DeleteDocuments removes documents by their ids.
	// Also removes associated index entries.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...string) error

	// ScanDocuments visits every stored document in unspecified order.
	// Iteration stops when fn returns false or an error.
	ScanDocuments(ctx context.Context, fn func(doc *core.Document) (bool, error)) error

	// GetDocumentsByAuthor retrieves documents written by the given author id.
	GetDocumentsByAuthor(ctx context.Context, authorID string) ([]*core.Document, error)

	// GetDocumentsByDateRange retrieves documents within a time range.
	// Returns documents where start <= Created < end, ordered by Created.
	GetDocumentsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Document, error)

	// GetRecentDocuments retrieves the N most recently saved documents,
	// ordered by Created descending. Returns up to limit documents.
	GetRecentDocuments(ctx context.Context, limit int) ([]*core.Document, error)

	// ReindexDocuments rewrites the date and author index entries for the
	// given documents. Used by offline index rebuilds.
	ReindexDocuments(ctx context.Context, docs ...*core.Document) error

	// DropIndexes removes every date and author index entry.
	// Primary records are untouched.
	DropIndexes(ctx context.Context) error
}
