// Package metaphone encodes words into Double Metaphone consonant skeletons.
//
// Every word maps to a primary and a secondary code. The two differ only where
// a spelling has two plausible pronunciations. Codes are never truncated.
package metaphone

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/ttaw/internal/model"
)

// padding mirrors the trailing blanks the rule cascade expects past the end of
// a word, so "end of word" and "followed by a space" look the same to a rule.
const padding = "     "

// Kind tags how a rule step writes to the two codes.
type Kind uint8

const (
	Silent Kind = iota
	Same
	PrimaryOnly
	SecondaryOnly
	Divergent
)

var kindNames = map[Kind]string{
	Silent:        "silent",
	Same:          "same",
	PrimaryOnly:   "primary-only",
	SecondaryOnly: "secondary-only",
	Divergent:     "divergent",
}

func (k Kind) String() string { return kindNames[k] }

// Step records a single rule application.
type Step struct {
	Pos       int
	Text      string
	Rule      string
	Kind      Kind
	Primary   string
	Secondary string
}

// Encode returns the primary and secondary codes for word.
func Encode(word string) (string, string) {
	var primary, secondary strings.Builder
	run(word, func(s Step) {
		primary.WriteString(s.Primary)
		secondary.WriteString(s.Secondary)
	})
	return primary.String(), secondary.String()
}

// EncodeAll encodes each word, keeping input order and spelling.
func EncodeAll(words []string) []model.Codes {
	out := make([]model.Codes, 0, len(words))
	for _, w := range words {
		primary, secondary := Encode(w)
		out = append(out, model.Codes{Word: w, Primary: primary, Secondary: secondary})
	}
	return out
}

// Trace returns the rule steps Encode applies to word, in cursor order.
func Trace(word string) []Step {
	var steps []Step
	run(word, func(s Step) {
		steps = append(steps, s)
	})
	return steps
}

// IsVowel reports whether r is one of the letters the encoder treats as a vowel.
func IsVowel(r rune) bool {
	switch unicode.ToUpper(r) {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	default:
		return false
	}
}

// StartsWithVowel reports whether the first non-blank letter of word is a vowel.
func StartsWithVowel(word string) bool {
	word = strings.TrimLeftFunc(word, unicode.IsSpace)
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return false
	}
	return IsVowel(r)
}

func run(word string, emit func(Step)) {
	if word == "" {
		return
	}
	c := newCursor(word)
	if r, ok := match(initialRules, c); ok {
		emit(c.step(r))
		c.pos += r.advance
	}
	for c.pos < c.length {
		rules, ok := letterRules[c.at(0)]
		if !ok {
			c.pos++
			continue
		}
		r, ok := match(rules, c)
		if !ok {
			c.pos++
			continue
		}
		n := r.advance
		if r.absorb != "" && strings.ContainsRune(r.absorb, c.at(1)) {
			n++
		}
		s := c.step(r)
		s.Text = c.text(n)
		emit(s)
		c.pos += n
	}
}

func match(rules []rule, c cursor) (rule, bool) {
	for _, r := range rules {
		if r.when == nil || r.when(c) {
			return r, true
		}
	}
	return rule{}, false
}

// cursor is a read-only view of the word around the current position. Rules
// only see letters through at and the match helpers, which are bounds checked.
type cursor struct {
	word          []rune
	length        int
	pos           int
	slavoGermanic bool
	germanic      bool
}

func newCursor(word string) cursor {
	upper := strings.ToUpper(word)
	return cursor{
		word:          []rune(upper + padding),
		length:        utf8.RuneCountInString(upper),
		slavoGermanic: isSlavoGermanic(upper),
		germanic:      isGermanic(upper),
	}
}

// isSlavoGermanic flags spellings whose clusters follow Slavic or Germanic
// rather than Romance pronunciation.
func isSlavoGermanic(upper string) bool {
	return strings.Contains(upper, "W") ||
		strings.Contains(upper, "K") ||
		strings.Contains(upper, "CZ") ||
		strings.Contains(upper, "WITZ")
}

func isGermanic(upper string) bool {
	return strings.HasPrefix(upper, "VAN ") ||
		strings.HasPrefix(upper, "VON ") ||
		strings.HasPrefix(upper, "SCH")
}

func (c cursor) last() int {
	return c.length - 1
}

func (c cursor) at(offset int) rune {
	i := c.pos + offset
	if i < 0 || i >= len(c.word) {
		return 0
	}
	return c.word[i]
}

func (c cursor) vowelAt(offset int) bool {
	return IsVowel(c.at(offset))
}

// matchAt reports whether any of options occurs starting offset letters from
// the cursor.
func (c cursor) matchAt(offset int, options ...string) bool {
	start := c.pos + offset
	if start < 0 {
		return false
	}
	for _, opt := range options {
		if runesAt(c.word, start, opt) {
			return true
		}
	}
	return false
}

func (c cursor) startsWith(options ...string) bool {
	for _, opt := range options {
		if runesAt(c.word, 0, opt) {
			return true
		}
	}
	return false
}

func (c cursor) endsWith(options ...string) bool {
	for _, opt := range options {
		start := c.length - utf8.RuneCountInString(opt)
		if start >= 0 && runesAt(c.word, start, opt) {
			return true
		}
	}
	return false
}

func (c cursor) text(n int) string {
	end := c.pos + n
	if end > c.length {
		end = c.length
	}
	if c.pos >= end {
		return ""
	}
	return string(c.word[c.pos:end])
}

func (c cursor) step(r rule) Step {
	return Step{
		Pos:       c.pos,
		Text:      c.text(r.advance),
		Rule:      r.name,
		Kind:      r.emit.kind,
		Primary:   r.emit.primary,
		Secondary: r.emit.secondary,
	}
}

func runesAt(word []rune, start int, s string) bool {
	i := start
	for _, r := range s {
		if i >= len(word) || word[i] != r {
			return false
		}
		i++
	}
	return true
}
