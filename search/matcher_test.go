package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/docstore/core"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func sampleDocument() *core.Document {
	return &core.Document{
		Id:      "1",
		Title:   "Alpha Release Notes",
		Content: "hello world, this is the first release",
		Author:  core.Author{Id: "u1", Name: "Ada"},
		Created: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestMatchesEmptyRequest(t *testing.T) {
	doc := sampleDocument()

	assert.True(t, Matches(doc, nil))
	assert.True(t, Matches(doc, &core.SearchRequest{}))
}

func TestMatchesTitlePrefixes(t *testing.T) {
	doc := sampleDocument()

	tests := []struct {
		name     string
		prefixes []string
		want     bool
	}{
		{"single matching prefix", []string{"Al"}, true},
		{"exact title as prefix", []string{"Alpha Release Notes"}, true},
		{"no matching prefix", []string{"Be"}, false},
		{"one of several matches", []string{"Be", "Ga", "Alpha"}, true},
		{"case sensitive", []string{"al"}, false},
		{"empty string prefix matches", []string{""}, true},
		{"nil list matches", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := &core.SearchRequest{TitlePrefixes: tc.prefixes}
			assert.Equal(t, tc.want, Matches(doc, req))
		})
	}
}

func TestMatchesContainsContents(t *testing.T) {
	doc := sampleDocument()

	tests := []struct {
		name       string
		substrings []string
		want       bool
	}{
		{"substring present", []string{"world"}, true},
		{"substring spanning words", []string{"hello world"}, true},
		{"substring absent", []string{"goodbye"}, false},
		{"one of several matches", []string{"goodbye", "release"}, true},
		{"case sensitive", []string{"Hello"}, false},
		{"nil list matches", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := &core.SearchRequest{ContainsContents: tc.substrings}
			assert.Equal(t, tc.want, Matches(doc, req))
		})
	}
}

func TestMatchesAuthorIds(t *testing.T) {
	doc := sampleDocument()

	tests := []struct {
		name      string
		authorIds []string
		want      bool
	}{
		{"author in set", []string{"u1"}, true},
		{"author not in set", []string{"u2"}, false},
		{"one of several matches", []string{"u2", "u3", "u1"}, true},
		{"prefix of id is not a match", []string{"u"}, false},
		{"nil list matches", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := &core.SearchRequest{AuthorIds: tc.authorIds}
			assert.Equal(t, tc.want, Matches(doc, req))
		})
	}
}

func TestMatchesCreatedRange(t *testing.T) {
	doc := sampleDocument()
	created := doc.Created

	tests := []struct {
		name string
		from *time.Time
		to   *time.Time
		want bool
	}{
		{"inside range", timePtr(created.Add(-time.Hour)), timePtr(created.Add(time.Hour)), true},
		{"from bound is inclusive", timePtr(created), nil, true},
		{"to bound is inclusive", nil, timePtr(created), true},
		{"both bounds equal created", timePtr(created), timePtr(created), true},
		{"before from", timePtr(created.Add(time.Microsecond)), nil, false},
		{"after to", nil, timePtr(created.Add(-time.Microsecond)), false},
		{"only from, satisfied", timePtr(created.Add(-time.Minute)), nil, true},
		{"only to, satisfied", nil, timePtr(created.Add(time.Minute)), true},
		{"no bounds", nil, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := &core.SearchRequest{CreatedFrom: tc.from, CreatedTo: tc.to}
			assert.Equal(t, tc.want, Matches(doc, req))
		})
	}
}

func TestMatchesConjunction(t *testing.T) {
	doc := sampleDocument()

	// All criteria satisfied
	req := &core.SearchRequest{
		TitlePrefixes:    []string{"Alpha"},
		ContainsContents: []string{"release"},
		AuthorIds:        []string{"u1"},
		CreatedFrom:      timePtr(doc.Created.Add(-time.Hour)),
		CreatedTo:        timePtr(doc.Created.Add(time.Hour)),
	}
	assert.True(t, Matches(doc, req))

	// A single failing criterion rejects the document
	req.AuthorIds = []string{"u2"}
	assert.False(t, Matches(doc, req))

	req.AuthorIds = []string{"u1"}
	req.TitlePrefixes = []string{"Beta"}
	assert.False(t, Matches(doc, req))
}
