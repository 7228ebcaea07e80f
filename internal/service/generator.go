package service

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

const (
	DefaultRandomLength = 16
	DefaultWordCount    = 4
	DefaultSeparator    = '-'
	DefaultPinLength    = 6

	MaxCount = 50
)

// GeneratorService handles credential generation business logic.
type GeneratorService struct {
	words crypto.WordSource
	rand  io.Reader
}

// ServiceOption customizes a GeneratorService.
type ServiceOption func(*GeneratorService)

// WithRandom makes every generator built by the service read from r.
func WithRandom(r io.Reader) ServiceOption {
	return func(s *GeneratorService) {
		s.rand = r
	}
}

// NewGeneratorService creates a new GeneratorService. A nil word source
// selects the built-in word list.
func NewGeneratorService(words crypto.WordSource, opts ...ServiceOption) *GeneratorService {
	s := &GeneratorService{words: words}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces req.Count credentials of the requested type.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxCount {
		return model.GenerateResponse{}, fmt.Errorf("%w: count must be between 1 and %d, got %d",
			crypto.ErrInvalidParameter, MaxCount, req.Count)
	}

	kind, gen, err := s.Build(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := gen.Generate(ctx)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		passwords = append(passwords, pw)
	}

	return model.GenerateResponse{
		Type:      string(kind),
		Count:     len(passwords),
		Passwords: passwords,
	}, nil
}

// Build validates req and constructs the matching generator. Zero values
// select the defaults; an empty type means random.
func (s *GeneratorService) Build(req model.GenerateRequest) (crypto.Kind, crypto.Generator, error) {
	kind := crypto.KindRandom
	if req.Type != "" {
		var err error
		if kind, err = crypto.ParseKind(req.Type); err != nil {
			return "", nil, err
		}
	}

	var opts []crypto.Option
	if s.rand != nil {
		opts = append(opts, crypto.WithRandom(s.rand))
	}

	var (
		gen crypto.Generator
		err error
	)
	switch kind {
	case crypto.KindRandom:
		gen, err = crypto.NewRandomPasswordGenerator(
			intOrDefault(req.Length, DefaultRandomLength),
			boolOrDefault(req.Numbers, true),
			boolOrDefault(req.Symbols, true),
			opts...,
		)
	case crypto.KindMemorable:
		var sep rune
		if sep, err = parseSeparator(req.Separator); err != nil {
			return "", nil, err
		}
		if s.words != nil {
			opts = append(opts, crypto.WithWordSource(s.words))
		}
		gen, err = crypto.NewMemorablePasswordGenerator(
			intOrDefault(req.Words, DefaultWordCount),
			sep,
			req.Capitalize,
			opts...,
		)
	case crypto.KindPin:
		gen, err = crypto.NewPinNumberGenerator(intOrDefault(req.Length, DefaultPinLength), opts...)
	}
	if err != nil {
		return "", nil, err
	}
	return kind, gen, nil
}

// Options reports the bounds and defaults of every generator.
func (s *GeneratorService) Options() model.OptionsResponse {
	return model.OptionsResponse{
		Random: model.RandomOptions{
			Length:  model.Range{Min: crypto.MinRandomLength, Max: crypto.MaxRandomLength, Default: DefaultRandomLength},
			Numbers: true,
			Symbols: true,
		},
		Memorable: model.MemorableOptions{
			Words:      model.Range{Min: crypto.MinWordCount, Max: crypto.MaxWordCount, Default: DefaultWordCount},
			Separator:  string(DefaultSeparator),
			Separators: crypto.Symbols,
		},
		Pin: model.PinOptions{
			Length: model.Range{Min: crypto.MinPinLength, Max: crypto.MaxPinLength, Default: DefaultPinLength},
		},
		MaxCount: MaxCount,
	}
}

// parseSeparator requires exactly one character; the generator checks which.
func parseSeparator(s string) (rune, error) {
	if s == "" {
		return DefaultSeparator, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: separator must be a single character, got %q", crypto.ErrInvalidParameter, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func intOrDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
