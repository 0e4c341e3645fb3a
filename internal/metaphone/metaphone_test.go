package metaphone

import "testing"

var knownWords = []struct {
	word      string
	primary   string
	secondary string
}{
	{"", "", ""},
	{"ptah", "PT", "PT"},
	{"ceasar", "SSR", "SSR"},
	{"ach", "AK", "AK"},
	{"chemical", "KMKL", "KMKL"},
	{"choral", "KRL", "KRL"},
	{"michael", "MKL", "MXL"},
	{"chianti", "KNT", "KNT"},
	{"tagliaro", "TKLR", "TLR"},
	{"svaraj", "SFRJ", "SFR"},
	{"cabrillo", "KPRL", "KPR"},
	{"villa", "FL", "F"},
	{"crevalle", "KRFL", "KRF"},
	{"allegretto", "ALKRT", "AKRT"},
	{"allegros", "ALKRS", "AKRS"},
	{"Xavier", "SF", "SFR"},
	{"sio", "S", "X"},
	{"sioricz", "SRS", "SRX"},
	{"sz", "S", "X"},
	{"sl", "SL", "XL"},
	{"schenker", "XNKR", "SKNKR"},
	{"schooner", "SKNR", "SKNR"},
	{"schlepp", "XLP", "SLP"},
	{"ois", "A", "AS"},
	{"th", "0", "T"},
	{"wa", "A", "F"},
	{"schwa", "X", "XF"},
	{"Arnow", "ARN", "ARNF"},
	{"Filipowicz", "FLPTS", "FLPFX"},
	{"Filipowitz", "FLPTS", "FLPFX"},
	{"Tsjaikowski", "TSKSK", "TSKFSK"},
	{"Tsjaikowsky", "TSKSK", "TSKFSK"},
	{"Mazurkiewicz", "MSRKTS", "MTSRKFX"},
	{"zza", "S", "TS"},
	{"agnize", "AKNS", "ANS"},
	{"acceptingness", "AKSPTNNS", "AKSPTNKNS"},
	{"auger", "AKR", "AJR"},
	{"bulgy", "PLK", "PLJ"},
	{"altogether", "ALTK0R", "ALTKTR"},
	{"tangier", "TNJ", "TNJR"},
	{"Joseph", "JSF", "HSF"},
	{"jose", "HS", "HS"},
	{"bajador", "PJTR", "PHTR"},
	{"Jankelowicz", "JNKLTS", "ANKLFX"},
	{"weight", "AT", "FT"},
	{"alexander", "ALKSNTR", "ALKSNTR"},
	{"aleksander", "ALKSNTR", "ALKSNTR"},
}

func TestEncodeKnownWords(t *testing.T) {
	for _, tt := range knownWords {
		primary, secondary := Encode(tt.word)
		if primary != tt.primary || secondary != tt.secondary {
			t.Fatalf("Encode(%q) = %q/%q, want %q/%q", tt.word, primary, secondary, tt.primary, tt.secondary)
		}
	}
}

func TestEncodeIsRepeatable(t *testing.T) {
	first := make([][2]string, len(knownWords))
	for i, tt := range knownWords {
		first[i][0], first[i][1] = Encode(tt.word)
	}
	for i := len(knownWords) - 1; i >= 0; i-- {
		primary, secondary := Encode(knownWords[i].word)
		if primary != first[i][0] || secondary != first[i][1] {
			t.Fatalf("Encode(%q) changed between calls: %q/%q then %q/%q",
				knownWords[i].word, first[i][0], first[i][1], primary, secondary)
		}
	}
}

func TestEncodePrimaryCodes(t *testing.T) {
	tests := map[string]string{
		"hugh":       "H",
		"bough":      "P",
		"broughton":  "PRTN",
		"laugh":      "LF",
		"curagh":     "KRK",
		"cagney":     "KKN",
		"disject":    "TSKT",
		"trekker":    "TRKR",
		"like":       "LK",
		"thumb":      "0M",
		"dumber":     "TMR",
		"island":     "ALNT",
		"borscht":    "PRXT",
		"sci":        "S",
		"scu":        "SK",
		"tion":       "XN",
		"tia":        "X",
		"tch":        "X",
		"thom":       "TM",
		"tham":       "TM",
		"matrix":     "MTRKS",
		"iauxa":      "AKS",
		"AUX":        "A",
		"breaux":     "PR",
		"AXC":        "AKS",
		"zhao":       "J",
		"G":          "K",
		"GG":         "K",
		"ha":         "H",
		"aha":        "AH",
		"h":          "",
		"w":          "",
		"orchestra":  "ARKSTR",
		"succeed":    "SKST",
		"focaccia":   "FKX",
		"Mac Gregor": "MKRKR",
		"knack":      "NK",
		"width":      "AT",
	}
	for word, want := range tests {
		if got, _ := Encode(word); got != want {
			t.Fatalf("Encode(%q) primary = %q, want %q", word, got, want)
		}
	}
}

func TestEncodeAllKeepsOrder(t *testing.T) {
	got := EncodeAll([]string{"Smith", "thumb", ""})
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	if got[0].Word != "Smith" || got[0].Primary != "SM0" || got[0].Secondary != "XMT" {
		t.Fatalf("unexpected Smith codes: %+v", got[0])
	}
	if got[1].Word != "thumb" || got[1].Primary != "0M" || got[1].Secondary != "TM" {
		t.Fatalf("unexpected thumb codes: %+v", got[1])
	}
	if got[2].Primary != "" || got[2].Secondary != "" {
		t.Fatalf("expected empty codes for empty word: %+v", got[2])
	}
}

func TestEncodeIgnoresCase(t *testing.T) {
	lowerP, lowerS := Encode("hiccups")
	upperP, upperS := Encode("HICCUPS")
	if lowerP != upperP || lowerS != upperS {
		t.Fatalf("expected case-insensitive codes, got %q/%q and %q/%q", lowerP, lowerS, upperP, upperS)
	}
	if lowerP != "HKPS" {
		t.Fatalf("unexpected primary code for hiccups: %q", lowerP)
	}
}

func TestEncodeSpecialLetters(t *testing.T) {
	if got, _ := Encode("ça"); got != "S" {
		t.Fatalf("expected Ç to encode as S, got %q", got)
	}
	if got, _ := Encode("ño"); got != "N" {
		t.Fatalf("expected Ñ to encode as N, got %q", got)
	}
	if got, _ := Encode("1999"); got != "" {
		t.Fatalf("expected digits to be skipped, got %q", got)
	}
}

func TestEncodeLongWordIsNotTruncated(t *testing.T) {
	primary, secondary := Encode("acceptingness")
	if len(primary) <= 4 || len(secondary) <= 4 {
		t.Fatalf("expected untruncated codes, got %q/%q", primary, secondary)
	}
}

func TestTraceRecordsRuleSteps(t *testing.T) {
	steps := Trace("thumb")
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d: %+v", len(steps), steps)
	}
	want := []struct {
		pos  int
		text string
		rule string
		kind Kind
	}{
		{0, "TH", "th", Divergent},
		{2, "U", "vowel", Silent},
		{3, "MB", "mb", Same},
	}
	for i, w := range want {
		got := steps[i]
		if got.Pos != w.pos || got.Text != w.text || got.Rule != w.rule || got.Kind != w.kind {
			t.Fatalf("step %d = %+v, want pos=%d text=%q rule=%q kind=%s", i, got, w.pos, w.text, w.rule, w.kind)
		}
	}
}

func TestTraceMatchesEncode(t *testing.T) {
	for _, word := range []string{"Mazurkiewicz", "schenker", "knight", "Xavier", "accident"} {
		var primary, secondary string
		for _, step := range Trace(word) {
			primary += step.Primary
			secondary += step.Secondary
		}
		wantP, wantS := Encode(word)
		if primary != wantP || secondary != wantS {
			t.Fatalf("Trace(%q) joins to %q/%q, Encode gives %q/%q", word, primary, secondary, wantP, wantS)
		}
	}
}

func TestTraceInitialSkip(t *testing.T) {
	steps := Trace("knight")
	if len(steps) == 0 || steps[0].Rule != "silent-initial" || steps[0].Text != "K" {
		t.Fatalf("expected leading silent K step, got %+v", steps)
	}
}

func TestStartsWithVowel(t *testing.T) {
	tests := map[string]bool{
		"apple":   true,
		"Yellow":  true,
		"  under": true,
		"\tEcho":  true,
		"bears":   false,
		"":        false,
		"   ":     false,
		"1apple":  false,
	}
	for word, want := range tests {
		if got := StartsWithVowel(word); got != want {
			t.Fatalf("StartsWithVowel(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestKindString(t *testing.T) {
	if Divergent.String() != "divergent" || SecondaryOnly.String() != "secondary-only" {
		t.Fatalf("unexpected kind names: %s, %s", Divergent, SecondaryOnly)
	}
}
