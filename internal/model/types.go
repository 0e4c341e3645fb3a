// Package model defines shared data structures.
package model

import (
	"strings"
	"time"
)

// Pronunciation is one dictionary-attested phoneme sequence. Vowel phonemes
// carry a trailing stress digit: 0 unstressed, 1 primary, 2 secondary.
type Pronunciation []string

// Dictionary maps a lowercase headword to its pronunciations in source order.
type Dictionary map[string][]Pronunciation

// Lookup returns the pronunciations for word after trimming and lowercasing it.
func (d Dictionary) Lookup(word string) ([]Pronunciation, bool) {
	key := Normalize(word)
	if key == "" {
		return nil, false
	}
	variants, ok := d[key]
	if !ok || len(variants) == 0 {
		return nil, false
	}
	return variants, true
}

// Normalize trims surrounding whitespace and lowercases word.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Source describes where the raw dictionary comes from and where the parsed
// copy is kept.
type Source struct {
	URL       string
	CachePath string
	Format    string
	Timeout   time.Duration
}

// Cache formats.
const (
	FormatJSON   = "json"
	FormatSQLite = "sqlite"
)

// Codes holds the primary and secondary phonetic codes for one word.
type Codes struct {
	Word      string
	Primary   string
	Secondary string
}

// Match is a headword found by a sound-alike search.
type Match struct {
	Word     string
	Distance int
}
