package storage

import (
	"testing"
	"time"

	"github.com/poiesic/docstore/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalDocumentID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"sequence id", "1"},
		{"large sequence id", "18446744073709551615"},
		{"caller-supplied id", "report-2025-q3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalDocumentID(tt.id)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalDocumentID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalDocumentID_Invalid(t *testing.T) {
	_, err := UnmarshalDocumentID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalDocument(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name string
		doc  *core.Document
	}{
		{
			name: "minimal document",
			doc: &core.Document{
				Id:      "1",
				Title:   "Alpha",
				Content: "hello world",
				Author:  core.Author{Id: "u1", Name: "User One"},
				Created: now,
			},
		},
		{
			name: "empty content",
			doc: &core.Document{
				Id:      "2",
				Title:   "Empty",
				Content: "",
				Author:  core.Author{Id: "u2", Name: ""},
				Created: now,
			},
		},
		{
			name: "unicode fields",
			doc: &core.Document{
				Id:      "3",
				Title:   "世界 report",
				Content: "Hello 世界 🌍 émojis",
				Author:  core.Author{Id: "ü-1", Name: "Ünïcödé"},
				Created: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalDocument(tt.doc)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalDocument(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.doc.Id, decoded.Id)
			assert.Equal(t, tt.doc.Title, decoded.Title)
			assert.Equal(t, tt.doc.Content, decoded.Content)
			assert.Equal(t, tt.doc.Author, decoded.Author)
			assert.True(t, tt.doc.Created.Equal(decoded.Created))
		})
	}
}

func TestUnmarshalDocument_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalDocument(tt.data)
			assert.Error(t, err)
		})
	}
}
