package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/storage"
)

// Pipeline orchestrates bulk loading of documents.
// It validates and deduplicates incoming documents and saves them
// concurrently through a worker pool.
type Pipeline struct {
	docRepository storage.DocumentRepository
	savePool      *ants.Pool
	logger        *slog.Logger

	mu   sync.Mutex
	seen map[string]struct{} // content fingerprints already ingested
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent saving.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.savePool != nil {
			p.savePool.Release()
		}

		savePool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.savePool = savePool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(docRepository storage.DocumentRepository, opts ...Option) (*Pipeline, error) {
	if docRepository == nil {
		return nil, ErrDocumentRepositoryRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	savePool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		docRepository: docRepository,
		savePool:      savePool,
		logger:        slog.Default(),
		seen:          map[string]struct{}{},
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest validates, deduplicates, and saves the given documents.
// Invalid documents are logged and skipped. Documents whose title and
// content fingerprint has already been ingested by this pipeline are
// skipped silently. Returns the number of documents saved and the first
// save error encountered, if any.
func (p *Pipeline) Ingest(ctx context.Context, docs ...*core.Document) (int, error) {
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
		saved    int
		savedMu  sync.Mutex
	)

	for _, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			p.logger.Warn("skipping invalid document", "err", err)
			continue
		}

		if p.alreadySeen(core.Fingerprint(doc.Title, doc.Content)) {
			continue
		}

		wg.Add(1)
		submitErr := p.savePool.Submit(func() {
			defer wg.Done()
			if _, err := p.docRepository.SaveDocument(ctx, doc); err != nil {
				p.logger.Error("error saving document", "title", doc.Title, "err", err)
				errOnce.Do(func() { firstErr = err })
				return
			}
			savedMu.Lock()
			saved++
			savedMu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			errOnce.Do(func() { firstErr = submitErr })
		}
	}

	wg.Wait()
	return saved, firstErr
}

// alreadySeen records the fingerprint and reports whether it was
// ingested before.
func (p *Pipeline) alreadySeen(fingerprint string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.seen[fingerprint]; ok {
		return true
	}
	p.seen[fingerprint] = struct{}{}
	return false
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.savePool != nil {
		p.savePool.Release()
	}
}
