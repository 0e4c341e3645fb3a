// Package poetry answers rhyme and alliteration questions from dictionary
// pronunciations.
package poetry

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/verte-zerg/ttaw/internal/metaphone"
	"github.com/verte-zerg/ttaw/internal/model"
	"github.com/verte-zerg/ttaw/internal/wordlist"
)

// Lookuper returns the pronunciations of a word. Unknown words report false
// with a nil error.
type Lookuper interface {
	Lookup(ctx context.Context, word string) ([]model.Pronunciation, bool, error)
}

// RhymingPart returns the phonemes from the last stressed vowel to the end.
// It reports false when no phoneme carries primary or secondary stress.
func RhymingPart(p model.Pronunciation) (model.Pronunciation, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if strings.HasSuffix(p[i], "1") || strings.HasSuffix(p[i], "2") {
			return p[i:], true
		}
	}
	return nil, false
}

// Rhymes reports whether any pronunciation of a shares its rhyming part with
// any pronunciation of b. Unknown words and words without stress never rhyme.
func Rhymes(ctx context.Context, l Lookuper, a, b string) (bool, error) {
	a, b = model.Normalize(a), model.Normalize(b)
	if a == "" || b == "" {
		return false, nil
	}
	va, vb, ok, err := lookupPair(ctx, l, a, b)
	if err != nil || !ok {
		return false, err
	}
	for _, pa := range va {
		partA, ok := RhymingPart(pa)
		if !ok {
			continue
		}
		for _, pb := range vb {
			partB, ok := RhymingPart(pb)
			if ok && slices.Equal(partA, partB) {
				return true, nil
			}
		}
	}
	return false, nil
}

// Alliterates reports whether a and b open with the same consonant sound.
// Words that start with a vowel letter never alliterate; that check runs
// before any lookup. Only the first pronunciation of each word is compared,
// and stress is ignored.
func Alliterates(ctx context.Context, l Lookuper, a, b string) (bool, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return false, nil
	}
	if metaphone.StartsWithVowel(a) || metaphone.StartsWithVowel(b) {
		return false, nil
	}
	va, vb, ok, err := lookupPair(ctx, l, model.Normalize(a), model.Normalize(b))
	if err != nil || !ok {
		return false, err
	}
	onsetA, okA := Onset(va[0])
	onsetB, okB := Onset(vb[0])
	return okA && okB && onsetA == onsetB, nil
}

// Onset returns the first phoneme of p without its stress digit.
func Onset(p model.Pronunciation) (string, bool) {
	if len(p) == 0 {
		return "", false
	}
	return stripStress(p[0]), true
}

// FindRhymes lists plain lowercase headwords that rhyme with word, excluding
// word itself, in alphabetical order. A limit of zero returns every match.
func FindRhymes(dict model.Dictionary, word string, limit int) []string {
	variants, ok := dict.Lookup(word)
	if !ok {
		return nil
	}
	parts := make(map[string]struct{}, len(variants))
	for _, p := range variants {
		if part, ok := RhymingPart(p); ok {
			parts[strings.Join(part, " ")] = struct{}{}
		}
	}
	if len(parts) == 0 {
		return nil
	}

	self := model.Normalize(word)
	var out []string
	for headword, candidates := range dict {
		if headword == self || !wordlist.PlainWord(headword) {
			continue
		}
		for _, p := range candidates {
			part, ok := RhymingPart(p)
			if !ok {
				continue
			}
			if _, hit := parts[strings.Join(part, " ")]; hit {
				out = append(out, headword)
				break
			}
		}
	}
	sort.Strings(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func lookupPair(ctx context.Context, l Lookuper, a, b string) ([]model.Pronunciation, []model.Pronunciation, bool, error) {
	va, okA, err := l.Lookup(ctx, a)
	if err != nil {
		return nil, nil, false, err
	}
	vb, okB, err := l.Lookup(ctx, b)
	if err != nil {
		return nil, nil, false, err
	}
	if !okA || !okB || len(va) == 0 || len(vb) == 0 {
		return nil, nil, false, nil
	}
	return va, vb, true, nil
}

// stripStress removes the trailing stress marker (0, 1, 2) from an ARPAbet phoneme.
func stripStress(phoneme string) string {
	if len(phoneme) == 0 {
		return phoneme
	}
	last := phoneme[len(phoneme)-1]
	if last == '0' || last == '1' || last == '2' {
		return phoneme[:len(phoneme)-1]
	}
	return phoneme
}
