// Package normalize holds small input-normalization helpers used by stores
// and handlers before values touch the database.
package normalize

import "strings"

// Name trims surrounding whitespace and collapses interior runs of
// whitespace to single spaces.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Email lowercases and trims an email address. Lookups and the unique
// index both operate on the normalized form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Code uppercases and trims a cluster join code. Codes are stored
// uppercase, so folding the caller's input makes joins case-insensitive.
func Code(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Role lowercases and trims a role string.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
