package crypto

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/vaultpass/passgen/internal/wordsource"
)

const (
	MinRandomLength = 10
	MaxRandomLength = 20

	MinWordCount = 3
	MaxWordCount = 8

	MinPinLength = 3
	MaxPinLength = 8
)

// Generator produces one credential per call. Every call is independently
// randomized.
type Generator interface {
	Generate(ctx context.Context) (string, error)
}

// WordSource supplies the raw word list for memorable passwords.
type WordSource interface {
	FetchWords(ctx context.Context) ([]string, error)
}

// Kind names a generator variant.
type Kind string

const (
	KindRandom    Kind = "random"
	KindMemorable Kind = "memorable"
	KindPin       Kind = "pin"
)

// ParseKind accepts a kind name or its one-letter alias (r, m, p).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "r":
		return KindRandom, nil
	case "memorable", "m":
		return KindMemorable, nil
	case "pin", "p":
		return KindPin, nil
	}
	return "", fmt.Errorf("%w: unknown password type %q, choose random, memorable or pin", ErrInvalidParameter, s)
}

// config holds the settings shared by every generator.
type config struct {
	length int
	rand   io.Reader
	words  WordSource
}

// Option customizes a generator at construction.
type Option func(*config)

// WithRandom sets the random source. Defaults to crypto/rand.Reader.
func WithRandom(r io.Reader) Option {
	return func(c *config) {
		c.rand = r
	}
}

// WithWordSource sets the word list used by memorable passwords. Defaults to
// the built-in English word list.
func WithWordSource(src WordSource) Option {
	return func(c *config) {
		c.words = src
	}
}

func newConfig(length int, opts []Option) config {
	c := config{length: length, rand: rand.Reader}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rand == nil {
		c.rand = rand.Reader
	}
	return c
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidParameter, name, lo, hi, v)
	}
	return nil
}

// RandomPasswordGenerator builds passwords of random characters with at least
// one lowercase and one uppercase letter, plus one digit and one symbol when
// enabled.
type RandomPasswordGenerator struct {
	config
	alphabet Alphabet
}

// NewRandomPasswordGenerator validates length against
// [MinRandomLength, MaxRandomLength].
func NewRandomPasswordGenerator(length int, includeDigits, includeSymbols bool, opts ...Option) (*RandomPasswordGenerator, error) {
	if err := checkRange("password length", length, MinRandomLength, MaxRandomLength); err != nil {
		return nil, err
	}
	return &RandomPasswordGenerator{
		config:   newConfig(length, opts),
		alphabet: BuildAlphabet(includeDigits, includeSymbols),
	}, nil
}

// Generate implements Generator.
func (g *RandomPasswordGenerator) Generate(_ context.Context) (string, error) {
	return SampleConstrained(g.rand, g.alphabet, g.length)
}

// MemorablePasswordGenerator joins dictionary words with a separator.
type MemorablePasswordGenerator struct {
	config
	separator  rune
	capitalize bool
}

// NewMemorablePasswordGenerator validates wordCount against
// [MinWordCount, MaxWordCount] and requires separator to be a single ASCII
// punctuation character.
func NewMemorablePasswordGenerator(wordCount int, separator rune, capitalize bool, opts ...Option) (*MemorablePasswordGenerator, error) {
	if err := checkRange("word count", wordCount, MinWordCount, MaxWordCount); err != nil {
		return nil, err
	}
	if !IsSymbol(separator) {
		return nil, fmt.Errorf("%w: separator %q must be one of %s", ErrInvalidParameter, separator, symbolChars)
	}

	c := newConfig(wordCount, opts)
	if c.words == nil {
		c.words = wordsource.Default()
	}
	return &MemorablePasswordGenerator{
		config:     c,
		separator:  separator,
		capitalize: capitalize,
	}, nil
}

// Generate implements Generator. Words are drawn with replacement, so the
// same word may appear more than once.
func (g *MemorablePasswordGenerator) Generate(ctx context.Context) (string, error) {
	raw, err := g.words.FetchWords(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	pool, err := FilterWords(raw, g.capitalize)
	if err != nil {
		return "", err
	}

	picked := make([]string, g.length)
	for i := range picked {
		j, err := randInt(g.rand, len(pool))
		if err != nil {
			return "", err
		}
		picked[i] = pool[j]
	}
	return strings.Join(picked, string(g.separator)), nil
}

// PinNumberGenerator produces numeric PINs.
type PinNumberGenerator struct {
	config
}

// NewPinNumberGenerator validates length against [MinPinLength, MaxPinLength].
func NewPinNumberGenerator(length int, opts ...Option) (*PinNumberGenerator, error) {
	if err := checkRange("pin length", length, MinPinLength, MaxPinLength); err != nil {
		return nil, err
	}
	return &PinNumberGenerator{config: newConfig(length, opts)}, nil
}

// Generate implements Generator. Digits are drawn independently.
func (g *PinNumberGenerator) Generate(_ context.Context) (string, error) {
	pin := make([]byte, g.length)
	for i := range pin {
		ch, err := randChar(g.rand, digitChars)
		if err != nil {
			return "", err
		}
		pin[i] = ch
	}
	return string(pin), nil
}
