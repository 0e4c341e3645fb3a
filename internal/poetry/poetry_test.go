package poetry

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/verte-zerg/ttaw/internal/cmudict"
	"github.com/verte-zerg/ttaw/internal/model"
)

// Entries copied from cmudict.dict.
const testDict = `far F AA1 R
tar T AA1 R
car K AA1 R
hissed HH IH1 S T
mist M IH1 S T
dissed D IH1 S T
trust T R AH1 S T
tryst T R IH1 S T
wrist R IH1 S T
a AH0
a(2) EY1
say S EY1
bouncing B AW1 N S IH0 NG
bounding B AW1 N D IH0 NG
bears B EH1 R Z
snappy S N AE1 P IY0
snails S N EY1 L Z
where W EH1 R
ants AE1 N T S
lazy L EY1 Z IY0
dog D AO1 G
the DH AH0
quick K W IH1 K
brown B R AW1 N
fox F AA1 K S
herb ER1 B
herb(2) HH ER1 B
curb K ER1 B
home HH OW1 M
red R EH1 D
edmund EH1 D M AH0 N D
o'hare OW0 HH EH1 R
`

func testStore(t *testing.T) *cmudict.Store {
	t.Helper()
	dict, _, err := cmudict.Parse(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("parse test dictionary: %v", err)
	}
	// Unstressed-only pronunciations for the no-rhyming-part cases.
	dict["hmm"] = []model.Pronunciation{{"HH", "M"}}
	dict["mm"] = []model.Pronunciation{{"M"}}
	return cmudict.FromDictionary(dict)
}

func TestRhymes(t *testing.T) {
	store := testStore(t)
	tests := []struct {
		a, b string
		want bool
	}{
		{"far", "tar", true},
		{"hissed", "mist", true},
		{"dissed", "mist", true},
		{"tryst", "wrist", true},
		{"a", "say", true},
		{"dissed", "trust", false},
		{"red", "edmund", false},
		{"hmm", "mm", false},
		{"empty", "  ", false},
		{"far", "", false},
		{"far", "\t", false},
		{"far", "\r\n", false},
		{"zzzxqq123", "far", false},
		{"far", "  TAR\n", true},
		{"FAR", "Tar", true},
	}
	for _, tt := range tests {
		got, err := Rhymes(context.Background(), store, tt.a, tt.b)
		if err != nil {
			t.Fatalf("Rhymes(%q, %q) failed: %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Fatalf("Rhymes(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAlliterates(t *testing.T) {
	store := testStore(t)
	tests := []struct {
		a, b string
		want bool
	}{
		{"bouncing", "bears", true},
		{"bounding", "bears", true},
		{"snappy", "snails", true},
		{"bouncing", "  bears", true},
		{"bouncing  ", "bears", true},
		{" bouncinG", "bEars", true},
		{"Bouncing", "beaRs", true},
		{"where", "ants", false},
		{"The", "quick", false},
		{"brown", "fox", false},
		{"a", "lazy", false},
		{"lazy", "dog", false},
		{"", "bears", false},
		{"bears", "   ", false},
		{"zzzxqq", "bears", false},
	}
	for _, tt := range tests {
		got, err := Alliterates(context.Background(), store, tt.a, tt.b)
		if err != nil {
			t.Fatalf("Alliterates(%q, %q) failed: %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Fatalf("Alliterates(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

type failingLookuper struct {
	calls int
}

func (f *failingLookuper) Lookup(context.Context, string) ([]model.Pronunciation, bool, error) {
	f.calls++
	return nil, false, cmudict.ErrFetch
}

func TestAlliteratesVowelCheckSkipsLookup(t *testing.T) {
	l := &failingLookuper{}
	got, err := Alliterates(context.Background(), l, "apple", "anything")
	if err != nil {
		t.Fatalf("expected no error for vowel-initial words, got %v", err)
	}
	if got {
		t.Fatalf("expected vowel-initial words not to alliterate")
	}
	if l.calls != 0 {
		t.Fatalf("expected no lookups, got %d", l.calls)
	}
}

func TestComparatorsPropagateLoadFailure(t *testing.T) {
	l := &failingLookuper{}
	if _, err := Rhymes(context.Background(), l, "far", "tar"); !errors.Is(err, cmudict.ErrFetch) {
		t.Fatalf("expected Rhymes to return ErrFetch, got %v", err)
	}
	if _, err := Alliterates(context.Background(), l, "bouncing", "bears"); !errors.Is(err, cmudict.ErrFetch) {
		t.Fatalf("expected Alliterates to return ErrFetch, got %v", err)
	}
}

func TestRhymeAndAlliterationVariantAsymmetry(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	// herb rhymes with curb through either pronunciation, but only the
	// second one opens with HH.
	rhymes, err := Rhymes(ctx, store, "herb", "curb")
	if err != nil || !rhymes {
		t.Fatalf("expected herb to rhyme with curb, got %v (%v)", rhymes, err)
	}
	allit, err := Alliterates(ctx, store, "herb", "home")
	if err != nil {
		t.Fatalf("Alliterates failed: %v", err)
	}
	if allit {
		t.Fatalf("expected alliteration to consult only the first variant of herb")
	}

	// a rhymes with say only through its second, stressed variant.
	rhymes, err = Rhymes(ctx, store, "a", "say")
	if err != nil || !rhymes {
		t.Fatalf("expected a to rhyme with say via its second variant, got %v (%v)", rhymes, err)
	}
}

func TestRhymingPart(t *testing.T) {
	tests := []struct {
		in   model.Pronunciation
		want string
		ok   bool
	}{
		{model.Pronunciation{"F", "AA1", "R"}, "AA1 R", true},
		{model.Pronunciation{"K", "L", "IY1", "V", "ER0"}, "IY1 V ER0", true},
		{model.Pronunciation{"T", "AH0", "M", "EY1", "T", "OW2"}, "OW2", true},
		{model.Pronunciation{"AH0"}, "", false},
		{nil, "", false},
	}
	for _, tt := range tests {
		got, ok := RhymingPart(tt.in)
		if ok != tt.ok || strings.Join(got, " ") != tt.want {
			t.Fatalf("RhymingPart(%v) = %v/%v, want %q/%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestOnsetStripsStress(t *testing.T) {
	got, ok := Onset(model.Pronunciation{"ER1", "B"})
	if !ok || got != "ER" {
		t.Fatalf("expected ER, got %q/%v", got, ok)
	}
	if _, ok := Onset(nil); ok {
		t.Fatalf("expected empty pronunciation to have no onset")
	}
}

func TestFindRhymes(t *testing.T) {
	dict, _, err := cmudict.Parse(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("parse test dictionary: %v", err)
	}

	got := FindRhymes(dict, "far", 0)
	if strings.Join(got, ",") != "car,tar" {
		t.Fatalf("unexpected rhymes for far: %v", got)
	}
	got = FindRhymes(dict, "mist", 0)
	if strings.Join(got, ",") != "dissed,hissed,tryst,wrist" {
		t.Fatalf("unexpected rhymes for mist: %v", got)
	}
	got = FindRhymes(dict, "mist", 2)
	if strings.Join(got, ",") != "dissed,hissed" {
		t.Fatalf("expected limit to truncate, got %v", got)
	}
	if got := FindRhymes(dict, "where", 0); len(got) != 0 {
		t.Fatalf("expected o'hare to be filtered out, got %v", got)
	}
	if got := FindRhymes(dict, "zzzxqq", 0); got != nil {
		t.Fatalf("expected unknown word to have no rhymes, got %v", got)
	}
}
