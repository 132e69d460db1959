package badger

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Key prefixes for different data types
const (
	docRecordPrefix = "docrec"
	docDatePrefix   = "docrecd"
	docAuthorPrefix = "docreca"
	docIDSeq        = "docrecseq"
)

// makeDocumentKey generates a key for a document by id.
func makeDocumentKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", docRecordPrefix, id))
}

// makeDocDateKey generates a composite key for the date index.
// Format: prefix:timestamp:id
func makeDocDateKey(created time.Time, id string) []byte {
	prefix := docDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 + len(id) // 8 bytes for timestamp + id bytes
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(created.UnixMicro()))
	offset += 8
	copy(buf[offset:], id)
	return buf
}

// makePartialDocDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialDocDateKey(created time.Time) []byte {
	prefix := docDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(created.UnixMicro()))
	return buf
}

// makeDocAuthorKey generates a composite key for the author index.
// Format: prefix:authorID:docID
func makeDocAuthorKey(authorID, id string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", docAuthorPrefix, authorID, id))
}

// makePartialDocAuthorKey generates a partial key for author queries.
// Format: prefix:authorID:
func makePartialDocAuthorKey(authorID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", docAuthorPrefix, authorID))
}
