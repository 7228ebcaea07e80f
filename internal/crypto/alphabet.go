package crypto

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Symbols lists the accepted symbol and separator characters.
	Symbols = symbolChars
)

// Alphabet is the character pool for one random password configuration.
type Alphabet struct {
	// Pool is the full sampling alphabet.
	Pool string
	// Classes holds the characters of each mandatory class, one entry per class.
	Classes []string
}

// BuildAlphabet assembles the alphabet for the given flags. Letters of both
// cases are always enabled and mandatory.
func BuildAlphabet(includeDigits, includeSymbols bool) Alphabet {
	a := Alphabet{
		Pool:    lowercaseChars + uppercaseChars,
		Classes: []string{lowercaseChars, uppercaseChars},
	}
	if includeDigits {
		a.Pool += digitChars
		a.Classes = append(a.Classes, digitChars)
	}
	if includeSymbols {
		a.Pool += symbolChars
		a.Classes = append(a.Classes, symbolChars)
	}
	return a
}

// IsSymbol reports whether r is one of the punctuation characters used as
// symbols and memorable password separators.
func IsSymbol(r rune) bool {
	for i := 0; i < len(symbolChars); i++ {
		if rune(symbolChars[i]) == r {
			return true
		}
	}
	return false
}
