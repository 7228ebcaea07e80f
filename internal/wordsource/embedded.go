package wordsource

import (
	"context"
	_ "embed"
	"strings"
)

//go:embed words.txt
var embeddedWords string

// Embedded serves the word list compiled into the binary.
type Embedded struct{}

// FetchWords implements Source.
func (Embedded) FetchWords(_ context.Context) ([]string, error) {
	return ParseWords(strings.NewReader(embeddedWords))
}
