// Package ingestion provides pipeline orchestration for loading documents in bulk.
//
// The Pipeline type manages the ingestion workflow for documents, including:
//   - Validating incoming documents and skipping invalid ones
//   - Deduplicating documents by content fingerprint
//   - Saving documents to storage concurrently
//
// Saving is performed concurrently using a worker pool to maximize throughput.
// Invalid documents are logged and skipped; they do not fail the ingestion operation.
package ingestion
