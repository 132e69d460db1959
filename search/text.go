package search

import "strings"

// hasAnyPrefix reports whether s starts with at least one of the given
// prefixes. Comparison is case-sensitive.
func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// containsAny reports whether s contains at least one of the given
// substrings as a contiguous, case-sensitive substring.
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
