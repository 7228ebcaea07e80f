package wordsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

type countingSource struct {
	calls int
	words []string
	err   error
}

func (c *countingSource) FetchWords(context.Context) ([]string, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.words, nil
}

func TestParseWords(t *testing.T) {
	input := "# comment\napple\n\n  tree  \r\n#skip\nriver\n"
	got, err := ParseWords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseWords() unexpected error: %v", err)
	}
	want := []string{"apple", "tree", "river"}
	if !slices.Equal(got, want) {
		t.Errorf("ParseWords() = %v, want %v", got, want)
	}
}

func TestCachedFetchesOnce(t *testing.T) {
	src := &countingSource{words: []string{"apple", "tree"}}
	cached := NewCached(src)

	for i := 0; i < 3; i++ {
		words, err := cached.FetchWords(context.Background())
		if err != nil {
			t.Fatalf("FetchWords() unexpected error: %v", err)
		}
		if len(words) != 2 {
			t.Fatalf("FetchWords() returned %d words, want 2", len(words))
		}
	}
	if src.calls != 1 {
		t.Errorf("underlying source called %d times, want 1", src.calls)
	}
}

func TestCachedDoesNotCacheErrors(t *testing.T) {
	src := &countingSource{err: errors.New("offline")}
	cached := NewCached(src)

	if _, err := cached.FetchWords(context.Background()); err == nil {
		t.Fatal("FetchWords() expected error")
	}

	src.err = nil
	src.words = []string{"apple"}
	words, err := cached.FetchWords(context.Background())
	if err != nil {
		t.Fatalf("FetchWords() unexpected error after recovery: %v", err)
	}
	if len(words) != 1 || src.calls != 2 {
		t.Errorf("FetchWords() = %v after %d calls, want retry to succeed", words, src.calls)
	}
}

func TestEmbedded(t *testing.T) {
	words, err := Embedded{}.FetchWords(context.Background())
	if err != nil {
		t.Fatalf("FetchWords() unexpected error: %v", err)
	}
	if len(words) < 100 {
		t.Fatalf("embedded list has %d words, want at least 100", len(words))
	}
	for _, w := range words {
		if strings.ToLower(w) != w || strings.ContainsAny(w, " #") {
			t.Errorf("embedded word %q is not a plain lowercase word", w)
		}
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different instances")
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("alpha\nbravo\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	words, err := File{Path: path}.FetchWords(context.Background())
	if err != nil {
		t.Fatalf("FetchWords() unexpected error: %v", err)
	}
	if !slices.Equal(words, []string{"alpha", "bravo"}) {
		t.Errorf("FetchWords() = %v", words)
	}
}

func TestFileMissing(t *testing.T) {
	_, err := File{Path: filepath.Join(t.TempDir(), "missing.txt")}.FetchWords(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("FetchWords() error = %v, want os.ErrNotExist", err)
	}
}
