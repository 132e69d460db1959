package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/docstore"
	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/ingestion"
)

var seedDocs = []struct {
	title    string
	content  string
	authorID string
	author   string
}{
	{"Getting Started", "A quick tour of the store: saving documents, looking them up by id, and composing search requests.", "u1", "Ada"},
	{"Getting Help", "Where to ask questions and how to file a useful bug report.", "u1", "Ada"},
	{"Release Notes 1.0", "First stable release. Includes the document store, sequential ids, and multi-criteria search.", "u2", "Ben"},
	{"Release Notes 1.1", "Adds bulk loading from JSONL files and offline index rebuilds.", "u2", "Ben"},
	{"Release Notes 1.2", "Performance improvements for large scans and a new progress reporter.", "u2", "Ben"},
	{"Architecture Overview", "The store keeps primary records and secondary indexes in BadgerDB. Searches scan every record.", "u3", "Cleo"},
	{"Architecture Decisions", "Why timestamps are reset on every save and why ids are decimal strings.", "u3", "Cleo"},
	{"Indexing Internals", "Date and author index keys are composite: a prefix, a big-endian timestamp, and the document id.", "u3", "Cleo"},
	{"Operations Runbook", "How to rebuild indexes after a restore and what the progress output means.", "u4", "Dev"},
	{"Operations Checklist", "Steps to verify a database directory before opening it in production.", "u4", "Dev"},
	{"Search Cookbook", "Recipes for combining title prefixes, content substrings, author sets, and date ranges.", "u1", "Ada"},
	{"Search Pitfalls", "Prefix and substring matching is case-sensitive; normalize your inputs before querying.", "u1", "Ada"},
	{"Ingestion Guide", "Bulk loading validates every document and skips duplicates by content fingerprint.", "u2", "Ben"},
	{"Ingestion Tuning", "Pool size defaults to half the CPU count. Raise it for fast disks, lower it for shared hosts.", "u2", "Ben"},
	{"Backup Strategy", "Copy the database directory while the store is closed, or use a filesystem snapshot.", "u4", "Dev"},
	{"Migration Notes", "Moving from a flat file archive: export to JSONL, then load with the seeder or the CLI.", "u3", "Cleo"},
	{"FAQ", "Common questions about id assignment, timestamp behavior, and empty search results.", "u1", "Ada"},
	{"Glossary", "Definitions for document, author, fingerprint, and the index key layout.", "u3", "Cleo"},
	{"Roadmap", "Planned work: streaming search results and configurable retention.", "u2", "Ben"},
	{"Contributing", "Code style, test expectations, and how to propose a change.", "u4", "Dev"},
}

var seedFileName = flag.String("src", "", "JSONL file of seed documents")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// docsFromFile loads seed documents from a JSONL file.
func docsFromFile(filename string) ([]*core.Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ingestion.DecodeJSONL(f)
}

// docsFromSlice converts the built-in corpus into documents.
func docsFromSlice() []*core.Document {
	docs := make([]*core.Document, len(seedDocs))
	for i, seed := range seedDocs {
		docs[i] = &core.Document{
			Title:   seed.title,
			Content: seed.content,
			Author:  core.Author{Id: seed.authorID, Name: seed.author},
		}
	}
	return docs
}

func main() {
	store, err := docstore.NewStore("./documents_db")
	if err != nil {
		panic(err)
	}
	defer store.Close()

	pipeline, err := store.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	ctx := context.Background()

	// Determine source of seed data
	var docs []*core.Document
	if seedFileName != nil && *seedFileName != "" {
		docs, err = docsFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		docs = docsFromSlice()
	}

	saved, err := pipeline.Ingest(ctx, docs...)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Seeded %d of %d document(s)\n", saved, len(docs))
}
