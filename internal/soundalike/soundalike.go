// Package soundalike finds dictionary headwords that sound like a query word.
//
// Double Metaphone codes select the candidates: a headword qualifies when its
// primary or secondary code equals either code of the query. Candidates are
// then ranked by Levenshtein distance between spellings.
package soundalike

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/verte-zerg/ttaw/internal/metaphone"
	"github.com/verte-zerg/ttaw/internal/model"
)

// Index maps phonetic codes to the words that produce them. It is read-only
// after construction and safe for concurrent use.
type Index struct {
	byCode map[string][]string
	size   int
}

// NewIndex encodes every word once. Words are normalized and duplicates are
// dropped; words with no consonant skeleton are not indexed.
func NewIndex(words []string) *Index {
	ix := &Index{byCode: make(map[string][]string)}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = model.Normalize(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		indexed := false
		for _, code := range codesFor(w) {
			ix.byCode[code] = append(ix.byCode[code], w)
			indexed = true
		}
		if indexed {
			ix.size++
		}
	}
	return ix
}

// FromDictionary indexes the headwords of dict.
func FromDictionary(dict model.Dictionary) *Index {
	words := make([]string, 0, len(dict))
	for w := range dict {
		words = append(words, w)
	}
	return NewIndex(words)
}

// Len returns the number of indexed words.
func (ix *Index) Len() int {
	return ix.size
}

// Find returns indexed words sharing a code with word, closest spelling
// first, ties broken alphabetically. The query itself is excluded. A limit of
// zero returns every match.
func (ix *Index) Find(word string, limit int) []model.Match {
	query := model.Normalize(word)
	if query == "" {
		return nil
	}

	seen := map[string]struct{}{query: {}}
	var matches []model.Match
	for _, code := range codesFor(query) {
		for _, candidate := range ix.byCode[code] {
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			matches = append(matches, model.Match{
				Word:     candidate,
				Distance: levenshtein.ComputeDistance(query, candidate),
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Word < matches[j].Word
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// codesFor returns the distinct non-empty codes of word.
func codesFor(word string) []string {
	primary, secondary := metaphone.Encode(word)
	var codes []string
	if primary != "" {
		codes = append(codes, primary)
	}
	if secondary != "" && secondary != primary {
		codes = append(codes, secondary)
	}
	return codes
}
