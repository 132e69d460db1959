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


package docstore

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/ingestion"
	"github.com/poiesic/docstore/reindex"
	"github.com/poiesic/docstore/search"
	"github.com/poiesic/docstore/storage"
	"github.com/poiesic/docstore/storage/badger"
)

type Store struct {
	backend  *badger.Backend
	docRepo  storage.DocumentRepository
	searcher *search.Searcher
	logger   *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	inMemory bool
	logger   *slog.Logger
}

// WithInMemory keeps all data in memory instead of on disk.
// The file path passed to NewStore is ignored.
func WithInMemory() StoreOption {
	return func(o *storeOptions) {
		o.inMemory = true
	}
}

// WithStoreLogger sets a custom logger.
// Default is slog.Default().
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(o *storeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func NewStore(filePath string, opts ...StoreOption) (*Store, error) {
	// Apply options
	options := &storeOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create document repository
	docRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create searcher
	searcher, err := search.NewSearcher(docRepo, search.WithLogger(options.logger))
	if err != nil {
		docRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Store{
		backend:  backend,
		docRepo:  docRepo,
		searcher: searcher,
		logger:   options.logger,
	}, nil
}

// NewMemoryStore creates a store that keeps all data in memory.
func NewMemoryStore(opts ...StoreOption) (*Store, error) {
	return NewStore("", append(opts, WithInMemory())...)
}

// Save upserts a document. A document with an empty Id is assigned the
// next generated id; a non-empty Id replaces any existing record. The
// Created timestamp is set to the current time on every save, including
// overwrites. Returns the document with Id and Created populated.
func (s *Store) Save(ctx context.Context, doc *core.Document) (*core.Document, error) {
	return s.docRepo.SaveDocument(ctx, doc)
}

// FindByID retrieves a document by id.
// Returns (nil, nil) when no document has the given id.
func (s *Store) FindByID(ctx context.Context, id string) (*core.Document, error) {
	doc, err := s.docRepo.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// Search returns every stored document matching the request, in
// arbitrary order. A nil or empty request matches all documents.
func (s *Store) Search(ctx context.Context, req *core.SearchRequest) ([]*core.Document, error) {
	return s.searcher.Search(ctx, req)
}

func (s *Store) Close() error {
	// Close repository
	if err := s.docRepo.Close(); err != nil {
		s.logger.Error("error closing document repository", "err", err)
		return err
	}

	// Close backend
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (s *Store) DocumentRepository() storage.DocumentRepository {
	return s.docRepo
}

func (s *Store) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(s.docRepo, opts...)
}

func (s *Store) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(s.docRepo, opts...)
}

func (s *Store) NewReindexer(config *reindex.Config, progress io.Writer) *reindex.Reindexer {
	return reindex.NewReindexer(s.docRepo, config, progress)
}
