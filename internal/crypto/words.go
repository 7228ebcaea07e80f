package crypto

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinWordLength = 4
	MaxWordLength = 6
)

// FilterWords returns the words of MinWordLength to MaxWordLength runes. With
// capitalize set, each returned word has its first letter upper-cased and the
// rest lower-cased. The input slice is not modified.
func FilterWords(words []string, capitalize bool) ([]string, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: word source returned no words", ErrDataUnavailable)
	}

	filtered := make([]string, 0, len(words)/4)
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		if n < MinWordLength || n > MaxWordLength {
			continue
		}
		if capitalize {
			w = capitalizeWord(w)
		}
		filtered = append(filtered, w)
	}

	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: no words between %d and %d characters",
			ErrDataUnavailable, MinWordLength, MaxWordLength)
	}
	return filtered, nil
}

func capitalizeWord(w string) string {
	first, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
}
