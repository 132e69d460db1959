// Package reindex provides functionality for rebuilding the secondary
// indexes of an existing document database.
//
// This package supports batch processing of documents, progress tracking,
// and retry logic with exponential backoff. A rebuild drops every date and
// author index entry, then rewrites them from the primary records.
package reindex
