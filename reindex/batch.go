package reindex

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/storage"
)

// BatchProcessor rewrites index entries for batches of documents.
type BatchProcessor struct {
	repo           storage.DocumentRepository
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for index writes
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.DocumentRepository, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process rewrites the date and author index entries for a batch of documents.
func (bp *BatchProcessor) Process(ctx context.Context, docs []*core.Document) error {
	if len(docs) == 0 {
		return nil
	}

	err := RetryWithBackoff(ctx, func() error {
		return bp.repo.ReindexDocuments(ctx, docs...)
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to reindex batch after %d attempts: %w", bp.maxRetries, err)
	}

	return nil
}
