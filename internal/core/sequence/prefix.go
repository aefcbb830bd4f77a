package sequence

import (
	"strings"
	"unicode"
)

// MaxPrefixLen caps derived scope prefixes at 4 characters.
const MaxPrefixLen = 4

// PrefixFromName derives a scope prefix from an entity name when no prefix
// code is configured. Multi-word names take the initial of each word;
// single-word names take the first letter followed by the remaining
// consonants. The result is uppercased and capped at MaxPrefixLen.
//
// "Mumbai Central" -> "MC", "Bandra" -> "BNDR".
func PrefixFromName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	if len(words) > 1 {
		for _, w := range words {
			if r, ok := firstLetter(w); ok {
				b.WriteRune(unicode.ToUpper(r))
			}
			if b.Len() >= MaxPrefixLen {
				break
			}
		}
		return b.String()
	}

	letters := lettersOf(words[0])
	if len(letters) == 0 {
		return ""
	}
	b.WriteRune(unicode.ToUpper(letters[0]))
	for _, r := range letters[1:] {
		if b.Len() >= MaxPrefixLen {
			break
		}
		if !isVowel(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

func firstLetter(word string) (rune, bool) {
	for _, r := range word {
		if unicode.IsLetter(r) {
			return r, true
		}
	}
	return 0, false
}

func lettersOf(word string) []rune {
	var out []rune
	for _, r := range word {
		if unicode.IsLetter(r) {
			out = append(out, r)
		}
	}
	return out
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
