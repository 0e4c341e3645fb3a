package wordlist

import "testing"

func TestPlainWord(t *testing.T) {
	if !PlainWord("hello") {
		t.Fatalf("expected hello to be a plain word")
	}
	for _, word := range []string{"", "résumé", "o'hare", "a.m.", "co-op", "Hello", "4th"} {
		if PlainWord(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
