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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/docstore"
	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/ingestion"
	"github.com/poiesic/docstore/reindex"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "docstore",
		Usage: "Document store with multi-criteria search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "put",
				Usage:     "Save a document (assigns an id when none is given)",
				ArgsUsage: "",
				Action:    putCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "id",
						Usage: "Document id (omit to let the store assign one)",
					},
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Document title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "content",
						Usage:    "Document content",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "author-id",
						Usage:    "Author id",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "author-name",
						Usage: "Author display name",
					},
				},
			},
			{
				Name:      "get",
				Usage:     "Look up a document by id",
				ArgsUsage: "<id>",
				Action:    getCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "search",
				Usage:  "Search documents by title prefix, content substring, author, and date range",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "title-prefix",
						Usage: "Match titles starting with this prefix (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "contains",
						Usage: "Match contents containing this substring (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "author-id",
						Usage: "Match documents by this author id (repeatable)",
					},
					&cli.TimestampFlag{
						Name:   "created-from",
						Usage:  "Inclusive lower bound on creation time (RFC3339)",
						Layout: time.RFC3339,
					},
					&cli.TimestampFlag{
						Name:   "created-to",
						Usage:  "Inclusive upper bound on creation time (RFC3339)",
						Layout: time.RFC3339,
					},
				},
			},
			{
				Name:      "load",
				Usage:     "Bulk load documents from a JSONL file",
				ArgsUsage: "<file>",
				Action:    loadCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent save workers",
					},
				},
			},
			{
				Name:   "reindex",
				Usage:  "Rebuild the date and author indexes from primary records",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openStore(c *cli.Context) (*docstore.Store, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	store, err := docstore.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}

func putCommand(c *cli.Context) error {
	ctx := context.Background()

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	doc := &core.Document{
		Id:      c.String("id"),
		Title:   c.String("title"),
		Content: c.String("content"),
		Author: core.Author{
			Id:   c.String("author-id"),
			Name: c.String("author-name"),
		},
	}

	if err := core.ValidateDocument(doc); err != nil {
		return err
	}

	saved, err := store.Save(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return printJSON(saved)
}

func getCommand(c *cli.Context) error {
	ctx := context.Background()

	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("document id is required")
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := store.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up document: %w", err)
	}
	if doc == nil {
		fmt.Fprintf(os.Stderr, "No document with id %q\n", id)
		return nil
	}

	return printJSON(doc)
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	req := &core.SearchRequest{
		TitlePrefixes:    c.StringSlice("title-prefix"),
		ContainsContents: c.StringSlice("contains"),
		AuthorIds:        c.StringSlice("author-id"),
		CreatedFrom:      c.Timestamp("created-from"),
		CreatedTo:        c.Timestamp("created-to"),
	}

	if err := core.ValidateSearchRequest(req); err != nil {
		return err
	}

	results, err := store.Search(ctx, req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "%d document(s) matched\n", len(results))
	for _, doc := range results {
		if err := printJSON(doc); err != nil {
			return err
		}
	}
	return nil
}

func loadCommand(c *cli.Context) error {
	ctx := context.Background()

	filePath := c.Args().First()
	if filePath == "" {
		return fmt.Errorf("input file is required")
	}

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	docs, err := ingestion.DecodeJSONL(f)
	if err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	var opts []ingestion.Option
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, ingestion.WithPoolSize(size))
	}

	pipeline, err := store.NewIngestionPipeline(opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	saved, err := pipeline.Ingest(ctx, docs...)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Loaded %d of %d document(s)\n", saved, len(docs))
	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	reindexConfig := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	// Validate config
	if reindexConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reindexConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reindexConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintln(os.Stderr)

	reindexer := store.NewReindexer(reindexConfig, os.Stderr)
	if err := reindexer.Run(ctx); err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}

	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
