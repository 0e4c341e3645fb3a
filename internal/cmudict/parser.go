// Package cmudict loads the CMU Pronouncing Dictionary and keeps a parsed
// copy on disk so later runs skip the download.
package cmudict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/ttaw/internal/model"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	UniqueWords  int
}

// Parse reads dictionary text and groups pronunciations by headword.
// Numbered variants such as "word(2)" are merged into "word" in source order.
func Parse(r io.Reader) (model.Dictionary, Stats, error) {
	dict := make(model.Dictionary)
	var stats Stats

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.TotalLines++
		line := scanner.Text()

		word, phonemes, err := parseLine(line)
		if errors.Is(err, errSkipLine) {
			if strings.HasPrefix(line, ";;;") {
				stats.CommentLines++
			}
			continue
		}

		stats.ParsedLines++
		dict[word] = append(dict[word], phonemes)
	}
	if err := scanner.Err(); err != nil {
		return nil, Stats{}, fmt.Errorf("scanner error: %w", err)
	}

	stats.UniqueWords = len(dict)
	return dict, stats, nil
}

// parseLine parses a single dictionary line into its headword and phonemes.
func parseLine(line string) (string, model.Pronunciation, error) {
	if strings.HasPrefix(line, ";;;") {
		return "", nil, errSkipLine
	}
	// Inline comments: "word W ER1 D # note".
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", nil, errSkipLine
	}

	word := parseHeadword(fields[0])
	if word == "" {
		return "", nil, errSkipLine
	}
	return word, model.Pronunciation(fields[1:]), nil
}

// parseHeadword lowercases a raw headword and strips a trailing "(n)" variant
// marker. Parentheses that are not a numeric suffix are kept.
func parseHeadword(raw string) string {
	word := strings.ToLower(raw)
	if !strings.HasSuffix(word, ")") {
		return word
	}
	idx := strings.LastIndexByte(word, '(')
	if idx <= 0 {
		return word
	}
	digits := word[idx+1 : len(word)-1]
	if digits == "" {
		return word
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return word
		}
	}
	return word[:idx]
}
