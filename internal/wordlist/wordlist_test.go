package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadWordsSkipsBlankAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# poets\nthumb\n\n  Mazurkiewicz  \n#skip\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	words, err := LoadWords(path, nil)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	if strings.Join(words, ",") != "thumb,Mazurkiewicz" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsFromStdin(t *testing.T) {
	words, err := LoadWords("-", strings.NewReader("far\ntar\n"))
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %v", words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	if _, err := LoadWords("-", strings.NewReader("\n# nothing\n")); err == nil {
		t.Fatalf("expected empty list to fail")
	}
	if _, err := LoadWords(filepath.Join(t.TempDir(), "missing.txt"), nil); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}
