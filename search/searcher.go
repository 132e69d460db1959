package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/storage"
)

// Searcher evaluates search requests against every stored document.
type Searcher struct {
	docRepository storage.DocumentRepository
	logger        *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(docRepository storage.DocumentRepository, opts ...Option) (*Searcher, error) {
	if docRepository == nil {
		return nil, ErrDocumentRepositoryRequired
	}

	s := &Searcher{
		docRepository: docRepository,
		logger:        slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns every stored document matching the request, in arbitrary
// order. An empty or nil request matches all documents; an empty store
// yields an empty slice.
func (s *Searcher) Search(ctx context.Context, req *core.SearchRequest) ([]*core.Document, error) {
	return s.SearchWithMonitor(ctx, req, nil)
}

// SearchWithMonitor is Search with observation hooks.
// The monitor receives callbacks for every scanned and matched document.
func (s *Searcher) SearchWithMonitor(ctx context.Context, req *core.SearchRequest, monitor SearchMonitor) ([]*core.Document, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(req)

	results := []*core.Document{}
	err := s.docRepository.ScanDocuments(ctx, func(doc *core.Document) (bool, error) {
		monitor.Scanned(doc)
		if Matches(doc, req) {
			monitor.Matched(doc)
			results = append(results, doc)
		}
		return true, nil
	})
	if err != nil {
		s.logger.Error("error scanning documents", "err", err)
		return nil, err
	}

	monitor.Finish(results)
	return results, nil
}
