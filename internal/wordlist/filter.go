package wordlist

// PlainWord reports whether word is made only of lowercase ASCII letters.
// Dictionary headwords with apostrophes, dots or digits fail it.
func PlainWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
