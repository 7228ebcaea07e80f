// Package wordsource provides the word lists memorable passwords are built
// from. Sources may read from disk or the network; Cached keeps the first
// successful result for the life of the process.
package wordsource

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Source returns a raw candidate word list.
type Source interface {
	FetchWords(ctx context.Context) ([]string, error)
}

// ParseWords reads one word per line, trimming whitespace and skipping blank
// lines and lines starting with '#'.
func ParseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

// Cached wraps a Source and remembers its first successful result. Failed
// fetches are not cached, so a later call tries the underlying source again.
type Cached struct {
	src Source

	mu    sync.Mutex
	words []string
}

// NewCached creates a new Cached source.
func NewCached(src Source) *Cached {
	return &Cached{src: src}
}

// FetchWords returns the cached list, fetching it on first use. The returned
// slice is shared and must not be modified.
func (c *Cached) FetchWords(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.words != nil {
		return c.words, nil
	}

	words, err := c.src.FetchWords(ctx)
	if err != nil {
		return nil, err
	}
	c.words = words
	return words, nil
}

var (
	defaultOnce   sync.Once
	defaultSource *Cached
)

// Default returns the process-wide cached built-in word list.
func Default() *Cached {
	defaultOnce.Do(func() {
		defaultSource = NewCached(Embedded{})
	})
	return defaultSource
}
