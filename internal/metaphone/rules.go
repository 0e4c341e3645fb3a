package metaphone

// emission is what a rule appends to the primary and secondary codes.
type emission struct {
	kind      Kind
	primary   string
	secondary string
}

var silent = emission{kind: Silent}

func same(code string) emission {
	return emission{kind: Same, primary: code, secondary: code}
}

func primaryOnly(code string) emission {
	return emission{kind: PrimaryOnly, primary: code}
}

func secondaryOnly(code string) emission {
	return emission{kind: SecondaryOnly, secondary: code}
}

func divergent(primary, secondary string) emission {
	return emission{kind: Divergent, primary: primary, secondary: secondary}
}

// rule is one clause of a letter's cascade. Clauses are tried in order and the
// first whose when holds fires. A nil when always holds. When the letter after
// the cursor is in absorb, the cursor moves one further than advance.
type rule struct {
	name    string
	when    func(c cursor) bool
	emit    emission
	advance int
	absorb  string
}

// initialRules run once before the main scan.
var initialRules = []rule{
	{
		name: "silent-initial",
		when: func(c cursor) bool {
			return c.startsWith("GN", "KN", "PN", "WR", "PS")
		},
		emit:    silent,
		advance: 1,
	},
	{
		name:    "initial-x",
		when:    func(c cursor) bool { return c.at(0) == 'X' },
		emit:    same("S"),
		advance: 1,
	},
}

var vowelRules = []rule{
	{name: "initial-vowel", when: func(c cursor) bool { return c.pos == 0 }, emit: same("A"), advance: 1},
	{name: "vowel", emit: silent, advance: 1},
}

var letterRules = map[rune][]rule{
	'A': vowelRules,
	'E': vowelRules,
	'I': vowelRules,
	'O': vowelRules,
	'U': vowelRules,
	'Y': vowelRules,
	'B': {
		{name: "b", emit: same("P"), advance: 1, absorb: "B"},
	},
	'Ç': {
		{name: "c-cedilla", emit: same("S"), advance: 1},
	},
	'C': cRules,
	'D': {
		{
			name: "soft-dg",
			when: func(c cursor) bool {
				return c.matchAt(0, "DG") && c.matchAt(2, "I", "E", "Y")
			},
			emit:    same("J"),
			advance: 3,
		},
		{name: "dg", when: func(c cursor) bool { return c.matchAt(0, "DG") }, emit: same("TK"), advance: 2},
		{name: "dt", when: func(c cursor) bool { return c.matchAt(0, "DT", "DD") }, emit: same("T"), advance: 2},
		{name: "d", emit: same("T"), advance: 1},
	},
	'F': {
		{name: "f", emit: same("F"), advance: 1, absorb: "F"},
	},
	'G': gRules,
	'H': {
		{
			name: "voiced-h",
			when: func(c cursor) bool {
				return (c.pos == 0 || c.vowelAt(-1)) && c.vowelAt(1)
			},
			emit:    same("H"),
			advance: 2,
		},
		{name: "h", emit: silent, advance: 1},
	},
	'J': jRules,
	'K': {
		{name: "k", emit: same("K"), advance: 1, absorb: "K"},
	},
	'L': {
		{
			name: "spanish-ll",
			when: func(c cursor) bool {
				if !c.matchAt(0, "LL") {
					return false
				}
				if c.pos == c.length-3 && c.matchAt(-1, "ILLO", "ILLA", "ALLE") {
					return true
				}
				return c.endsWith("AS", "OS", "A", "O") && c.matchAt(-1, "ALLE")
			},
			emit:    primaryOnly("L"),
			advance: 2,
		},
		{name: "l", emit: same("L"), advance: 1, absorb: "L"},
	},
	'M': {
		{
			name: "mb",
			when: func(c cursor) bool {
				return (c.matchAt(-1, "UMB") && (c.pos+1 == c.last() || c.matchAt(2, "ER"))) ||
					c.at(1) == 'M'
			},
			emit:    same("M"),
			advance: 2,
		},
		{name: "m", emit: same("M"), advance: 1},
	},
	'N': {
		{name: "n", emit: same("N"), advance: 1, absorb: "N"},
	},
	'Ñ': {
		{name: "n-tilde", emit: same("N"), advance: 1},
	},
	'P': {
		{name: "ph", when: func(c cursor) bool { return c.at(1) == 'H' }, emit: same("F"), advance: 2},
		{name: "p", emit: same("P"), advance: 1, absorb: "PB"},
	},
	'Q': {
		{name: "q", emit: same("K"), advance: 1, absorb: "Q"},
	},
	'R': {
		{
			name: "french-final-r",
			when: func(c cursor) bool {
				return c.pos == c.last() && !c.slavoGermanic &&
					c.matchAt(-2, "IE") && !c.matchAt(-4, "ME", "MA")
			},
			emit:    secondaryOnly("R"),
			advance: 1,
			absorb:  "R",
		},
		{name: "r", emit: same("R"), advance: 1, absorb: "R"},
	},
	'S': sRules,
	'T': {
		{name: "tion", when: func(c cursor) bool { return c.matchAt(0, "TION") }, emit: same("X"), advance: 3},
		{name: "tia", when: func(c cursor) bool { return c.matchAt(0, "TIA", "TCH") }, emit: same("X"), advance: 3},
		{
			name: "hard-th",
			when: func(c cursor) bool {
				return c.matchAt(0, "TH", "TTH") && (c.matchAt(2, "OM", "AM") || c.germanic)
			},
			emit:    same("T"),
			advance: 2,
		},
		{name: "th", when: func(c cursor) bool { return c.matchAt(0, "TH", "TTH") }, emit: divergent("0", "T"), advance: 2},
		{name: "t", emit: same("T"), advance: 1, absorb: "TD"},
	},
	'V': {
		{name: "v", emit: same("F"), advance: 1, absorb: "V"},
	},
	'W': wRules,
	'X': {
		{
			name: "french-final-x",
			when: func(c cursor) bool {
				return c.pos == c.last() && (c.matchAt(-3, "IAU", "EAU") || c.matchAt(-2, "AU", "OU"))
			},
			emit:    silent,
			advance: 1,
			absorb:  "CX",
		},
		{name: "x", emit: same("KS"), advance: 1, absorb: "CX"},
	},
	'Z': {
		{name: "zh", when: func(c cursor) bool { return c.at(1) == 'H' }, emit: same("J"), advance: 2},
		{
			name: "italian-z",
			when: func(c cursor) bool {
				return c.matchAt(1, "ZO", "ZI", "ZA") ||
					(c.slavoGermanic && c.pos > 0 && c.at(-1) != 'T')
			},
			emit:    divergent("S", "TS"),
			advance: 1,
			absorb:  "Z",
		},
		{name: "z", emit: same("S"), advance: 1, absorb: "Z"},
	},
}

var cRules = []rule{
	{
		name: "germanic-ach",
		when: func(c cursor) bool {
			return c.pos > 1 && !c.vowelAt(-2) && c.matchAt(-1, "ACH") &&
				c.at(2) != 'I' && (c.at(2) != 'E' || c.matchAt(-2, "BACHER", "MACHER"))
		},
		emit:    same("K"),
		advance: 2,
	},
	{
		name:    "caesar",
		when:    func(c cursor) bool { return c.pos == 0 && c.matchAt(0, "CAESAR") },
		emit:    same("S"),
		advance: 2,
	},
	{name: "chia", when: func(c cursor) bool { return c.matchAt(0, "CHIA") }, emit: same("K"), advance: 2},
	{
		name:    "chae",
		when:    func(c cursor) bool { return c.pos > 0 && c.matchAt(0, "CHAE") },
		emit:    divergent("K", "X"),
		advance: 2,
	},
	{
		name: "greek-initial-ch",
		when: func(c cursor) bool {
			return c.pos == 0 &&
				c.matchAt(1, "HARAC", "HARIS", "HOR", "HYM", "HIA", "HEM") &&
				!c.matchAt(0, "CHORE")
		},
		emit:    same("K"),
		advance: 2,
	},
	{
		name: "hard-ch",
		when: func(c cursor) bool {
			if !c.matchAt(0, "CH") {
				return false
			}
			return c.germanic ||
				c.matchAt(-2, "ORCHES", "ARCHIT", "ORCHID") ||
				c.matchAt(2, "T", "S") ||
				((c.matchAt(-1, "A", "O", "U", "E") || c.pos == 0) &&
					c.matchAt(2, "L", "R", "N", "M", "B", "H", "F", "V", "W", " "))
		},
		emit:    same("K"),
		advance: 2,
	},
	{
		name:    "mc-ch",
		when:    func(c cursor) bool { return c.pos > 0 && c.matchAt(0, "CH") && c.startsWith("MC") },
		emit:    same("K"),
		advance: 2,
	},
	{
		name:    "ch",
		when:    func(c cursor) bool { return c.pos > 0 && c.matchAt(0, "CH") },
		emit:    divergent("X", "K"),
		advance: 2,
	},
	{name: "initial-ch", when: func(c cursor) bool { return c.matchAt(0, "CH") }, emit: same("X"), advance: 2},
	{
		name:    "cz",
		when:    func(c cursor) bool { return c.matchAt(0, "CZ") && !c.matchAt(-2, "WICZ") },
		emit:    divergent("S", "X"),
		advance: 2,
	},
	{name: "ccia", when: func(c cursor) bool { return c.matchAt(1, "CIA") }, emit: same("X"), advance: 3},
	{
		name: "cc-ks",
		when: func(c cursor) bool {
			return doubleC(c) && softDoubleC(c) &&
				((c.pos == 1 && c.at(-1) == 'A') || c.matchAt(-1, "UCCEE", "UCCES"))
		},
		emit:    same("KS"),
		advance: 3,
	},
	{
		name:    "cc-x",
		when:    func(c cursor) bool { return doubleC(c) && softDoubleC(c) },
		emit:    same("X"),
		advance: 3,
	},
	{name: "cc", when: doubleC, emit: same("K"), advance: 2},
	{name: "ck", when: func(c cursor) bool { return c.matchAt(0, "CK", "CG", "CQ") }, emit: same("K"), advance: 2},
	{
		name:    "italian-ci",
		when:    func(c cursor) bool { return c.matchAt(0, "CIO", "CIE", "CIA") },
		emit:    divergent("S", "X"),
		advance: 2,
	},
	{name: "soft-c", when: func(c cursor) bool { return c.matchAt(0, "CI", "CE", "CY") }, emit: same("S"), advance: 2},
	{
		name:    "mac-c",
		when:    func(c cursor) bool { return c.matchAt(1, " C", " Q", " G") },
		emit:    same("K"),
		advance: 3,
	},
	{name: "c", emit: same("K"), advance: 1},
}

// doubleC matches CC except the Mc prefix.
func doubleC(c cursor) bool {
	return c.matchAt(0, "CC") && !(c.pos == 1 && c.startsWith("M"))
}

func softDoubleC(c cursor) bool {
	return c.matchAt(2, "I", "E", "H") && !c.matchAt(2, "HU")
}

var gRules = []rule{
	{
		name:    "gh-after-consonant",
		when:    func(c cursor) bool { return c.at(1) == 'H' && c.pos > 0 && !c.vowelAt(-1) },
		emit:    same("K"),
		advance: 2,
	},
	{
		name:    "initial-ghi",
		when:    func(c cursor) bool { return c.at(1) == 'H' && c.pos == 0 && c.at(2) == 'I' },
		emit:    same("J"),
		advance: 2,
	},
	{
		name:    "initial-gh",
		when:    func(c cursor) bool { return c.at(1) == 'H' && c.pos == 0 },
		emit:    same("K"),
		advance: 2,
	},
	{
		// hugh, bough, broughton
		name: "silent-gh",
		when: func(c cursor) bool {
			return c.at(1) == 'H' &&
				((c.pos > 1 && c.matchAt(-2, "B", "H", "D")) ||
					(c.pos > 2 && c.matchAt(-3, "B", "H", "D")) ||
					(c.pos > 3 && c.matchAt(-4, "B", "H")))
		},
		emit:    silent,
		advance: 2,
	},
	{
		name: "gh-f",
		when: func(c cursor) bool {
			return c.at(1) == 'H' && c.pos > 2 && c.at(-1) == 'U' &&
				c.matchAt(-3, "C", "G", "L", "R", "T")
		},
		emit:    same("F"),
		advance: 2,
	},
	{
		name:    "gh-k",
		when:    func(c cursor) bool { return c.at(1) == 'H' && c.pos > 0 && c.at(-1) != 'I' },
		emit:    same("K"),
		advance: 2,
	},
	{name: "gh", when: func(c cursor) bool { return c.at(1) == 'H' }, emit: silent, advance: 2},
	{
		name: "initial-vowel-gn",
		when: func(c cursor) bool {
			return c.at(1) == 'N' && c.pos == 1 && IsVowel(c.word[0]) && !c.slavoGermanic
		},
		emit:    divergent("KN", "N"),
		advance: 2,
	},
	{
		name: "gn",
		when: func(c cursor) bool {
			return c.at(1) == 'N' && !c.matchAt(2, "EY") && !c.slavoGermanic
		},
		emit:    divergent("N", "KN"),
		advance: 2,
	},
	{name: "gn-kn", when: func(c cursor) bool { return c.at(1) == 'N' }, emit: same("KN"), advance: 2},
	{
		name:    "gli",
		when:    func(c cursor) bool { return c.matchAt(1, "LI") && !c.slavoGermanic },
		emit:    divergent("KL", "L"),
		advance: 2,
	},
	{
		name: "initial-ges",
		when: func(c cursor) bool {
			return c.pos == 0 && (c.at(1) == 'Y' ||
				c.matchAt(1, "ES", "EP", "EB", "EL", "EY", "IB", "IL", "IN", "IE", "EI", "ER"))
		},
		emit:    divergent("K", "J"),
		advance: 2,
	},
	{
		name: "ger",
		when: func(c cursor) bool {
			return (c.matchAt(1, "ER") || c.at(1) == 'Y') &&
				!c.startsWith("DANGER", "RANGER", "MANGER") &&
				!c.matchAt(-1, "E", "I") &&
				!c.matchAt(-1, "RGY", "OGY")
		},
		emit:    divergent("K", "J"),
		advance: 2,
	},
	{
		name:    "germanic-ge",
		when:    func(c cursor) bool { return italianG(c) && (c.germanic || c.matchAt(1, "ET")) },
		emit:    same("K"),
		advance: 2,
	},
	{
		name:    "gier",
		when:    func(c cursor) bool { return italianG(c) && c.matchAt(1, "IER ") },
		emit:    same("J"),
		advance: 2,
	},
	{name: "italian-g", when: italianG, emit: divergent("J", "K"), advance: 2},
	{name: "gg", when: func(c cursor) bool { return c.at(1) == 'G' }, emit: same("K"), advance: 2},
	{name: "g", emit: same("K"), advance: 1},
}

func italianG(c cursor) bool {
	return c.matchAt(1, "E", "I", "Y") || c.matchAt(-1, "AGGI", "OGGI")
}

// spanishJ matches José and the San prefix.
func spanishJ(c cursor) bool {
	return c.matchAt(0, "JOSE") || c.startsWith("SAN ")
}

var jRules = []rule{
	{
		name: "spanish-j-h",
		when: func(c cursor) bool {
			return spanishJ(c) && ((c.pos == 0 && c.at(4) == ' ') || c.startsWith("SAN "))
		},
		emit:    same("H"),
		advance: 1,
	},
	{name: "spanish-j", when: spanishJ, emit: divergent("J", "H"), advance: 1},
	{
		name:    "initial-j",
		when:    func(c cursor) bool { return c.pos == 0 },
		emit:    divergent("J", "A"),
		advance: 1,
		absorb:  "J",
	},
	{
		name: "spanish-vowel-j",
		when: func(c cursor) bool {
			return c.vowelAt(-1) && !c.slavoGermanic && c.matchAt(1, "A", "O")
		},
		emit:    divergent("J", "H"),
		advance: 1,
		absorb:  "J",
	},
	{
		name:    "final-j",
		when:    func(c cursor) bool { return c.pos == c.last() },
		emit:    primaryOnly("J"),
		advance: 1,
		absorb:  "J",
	},
	{
		name: "j",
		when: func(c cursor) bool {
			return !c.matchAt(1, "L", "T", "K", "S", "N", "M", "B", "Z") &&
				!c.matchAt(-1, "S", "K", "L")
		},
		emit:    same("J"),
		advance: 1,
		absorb:  "J",
	},
	{name: "silent-j", emit: silent, advance: 1, absorb: "J"},
}

var sRules = []rule{
	{name: "isl", when: func(c cursor) bool { return c.matchAt(-1, "ISL", "YSL") }, emit: silent, advance: 1},
	{
		name:    "sugar",
		when:    func(c cursor) bool { return c.pos == 0 && c.matchAt(0, "SUGAR") },
		emit:    divergent("X", "S"),
		advance: 1,
	},
	{
		name:    "germanic-sh",
		when:    func(c cursor) bool { return c.at(1) == 'H' && c.matchAt(1, "HEIM", "HOEK", "HOLM", "HOLZ") },
		emit:    same("S"),
		advance: 2,
	},
	{name: "sh", when: func(c cursor) bool { return c.at(1) == 'H' }, emit: same("X"), advance: 2},
	{
		name:    "sio",
		when:    func(c cursor) bool { return c.matchAt(0, "SIO", "SIA", "SIAN") && !c.slavoGermanic },
		emit:    divergent("S", "X"),
		advance: 3,
	},
	{name: "slavic-sio", when: func(c cursor) bool { return c.matchAt(0, "SIO", "SIA", "SIAN") }, emit: same("S"), advance: 3},
	{
		name: "anglicized-s",
		when: func(c cursor) bool {
			return (c.pos == 0 && c.matchAt(1, "M", "N", "L", "W")) || c.at(1) == 'Z'
		},
		emit:    divergent("S", "X"),
		advance: 1,
		absorb:  "Z",
	},
	{
		name:    "dutch-scher",
		when:    func(c cursor) bool { return c.matchAt(0, "SCH") && c.matchAt(3, "ER", "EN") },
		emit:    divergent("X", "SK"),
		advance: 3,
	},
	{
		name:    "sch-k",
		when:    func(c cursor) bool { return c.matchAt(0, "SCH") && c.matchAt(3, "OO", "UY", "ED", "EM") },
		emit:    same("SK"),
		advance: 3,
	},
	{
		name: "initial-sch",
		when: func(c cursor) bool {
			return c.matchAt(0, "SCH") && c.pos == 0 && !c.vowelAt(3) && c.at(3) != 'W'
		},
		emit:    divergent("X", "S"),
		advance: 3,
	},
	{name: "sch", when: func(c cursor) bool { return c.matchAt(0, "SCH") }, emit: same("X"), advance: 3},
	{name: "soft-sc", when: func(c cursor) bool { return c.matchAt(0, "SCI", "SCE", "SCY") }, emit: same("S"), advance: 3},
	{name: "sc", when: func(c cursor) bool { return c.matchAt(0, "SC") }, emit: same("SK"), advance: 3},
	{
		name:    "french-final-s",
		when:    func(c cursor) bool { return c.pos == c.last() && c.matchAt(-2, "AI", "OI") },
		emit:    secondaryOnly("S"),
		advance: 1,
		absorb:  "SZ",
	},
	{name: "s", emit: same("S"), advance: 1, absorb: "SZ"},
}

var wRules = []rule{
	{name: "wr", when: func(c cursor) bool { return c.at(1) == 'R' }, emit: same("R"), advance: 2},
	{
		name:    "initial-wicz",
		when:    func(c cursor) bool { return c.pos == 0 && c.matchAt(0, "WICZ", "WITZ") },
		emit:    divergent("ATS", "FFX"),
		advance: 4,
	},
	{
		name:    "initial-w-vowel",
		when:    func(c cursor) bool { return c.pos == 0 && c.vowelAt(1) },
		emit:    divergent("A", "F"),
		advance: 1,
	},
	{
		name:    "initial-wh",
		when:    func(c cursor) bool { return c.pos == 0 && c.at(1) == 'H' },
		emit:    same("A"),
		advance: 1,
	},
	{
		// Arnow, Filipowski
		name: "w-f",
		when: func(c cursor) bool {
			return (c.pos == c.last() && c.vowelAt(-1)) ||
				c.matchAt(-1, "EWSKI", "EWSKY", "OWSKI", "OWSKY") ||
				c.startsWith("SCH")
		},
		emit:    secondaryOnly("F"),
		advance: 1,
	},
	{
		name:    "wicz",
		when:    func(c cursor) bool { return c.matchAt(0, "WICZ", "WITZ") },
		emit:    divergent("TS", "FX"),
		advance: 4,
	},
	{name: "w", emit: silent, advance: 1},
}
