package service

import (
	"fmt"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/repository"
	"github.com/vaultpass/passgen/internal/wordsource"
)

// NewWordSource builds the configured word source, cached for the life of
// the process. The returned close function releases any database handle.
func NewWordSource(cfg config.Config) (crypto.WordSource, func() error, error) {
	noop := func() error { return nil }

	switch cfg.WordSource {
	case config.WordSourceEmbedded:
		return wordsource.Default(), noop, nil
	case config.WordSourceFile:
		return wordsource.NewCached(wordsource.File{Path: cfg.WordListPath}), noop, nil
	case config.WordSourceURL:
		return wordsource.NewCached(wordsource.NewHTTP(cfg.WordListURL, cfg.WordCacheDir)), noop, nil
	case config.WordSourceMySQL:
		db, err := repository.NewDB(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("opening word database: %w", err)
		}
		return wordsource.NewCached(repository.NewWordRepository(db)), db.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: unknown word source %q", config.ErrInvalidConfig, cfg.WordSource)
}
