package wordsource

import (
	"context"
	"fmt"
	"os"
)

// File reads a newline separated word list from disk on every fetch. Wrap it
// in Cached to read it once.
type File struct {
	Path string
}

// FetchWords implements Source.
func (f File) FetchWords(_ context.Context) ([]string, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer fh.Close()

	return ParseWords(fh)
}
