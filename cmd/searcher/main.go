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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/docstore"
	"github.com/poiesic/docstore/core"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	store, err := docstore.NewStore("./documents_db")
	if err != nil {
		panic(err)
	}
	defer store.Close()
	searcher, err := store.NewSearcher()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	var results []*core.Document
	if len(os.Args) > 1 {
		results, err = searcher.Search(ctx, &core.SearchRequest{
			ContainsContents: []string{strings.Join(os.Args[1:], " ")},
		})
	} else {
		results, err = searcher.Search(ctx, &core.SearchRequest{
			TitlePrefixes: []string{"Release"},
		})
	}
	if err != nil {
		panic(err)
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: '%s' (%s) by %s\n", i, hit.Title, hit.Id, hit.Author.Name)
	}
}
