package wordsource

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const maxDownloadSize = 32 << 20 // 32MB

var ErrDownloadFailed = errors.New("word list download failed")

// HTTP downloads a word list on first use and keeps a copy in CacheDir, so
// later processes read it from disk instead of the network.
type HTTP struct {
	URL      string
	CacheDir string
	Client   *http.Client
}

// NewHTTP creates a new HTTP source with a 30 second client timeout.
func NewHTTP(url, cacheDir string) *HTTP {
	return &HTTP{
		URL:      url,
		CacheDir: cacheDir,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// CachePath is the file the downloaded list is stored in.
func (h *HTTP) CachePath() string {
	sum := sha256.Sum256([]byte(h.URL))
	return filepath.Join(h.CacheDir, "words-"+hex.EncodeToString(sum[:8])+".txt")
}

// FetchWords implements Source.
func (h *HTTP) FetchWords(ctx context.Context) ([]string, error) {
	path := h.CachePath()

	words, err := File{Path: path}.FetchWords(ctx)
	if err == nil && len(words) > 0 {
		return words, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("word list cache unreadable, downloading again", "path", path, "error", err)
	}

	if err := h.download(ctx, path); err != nil {
		return nil, err
	}
	return File{Path: path}.FetchWords(ctx)
}

func (h *HTTP) download(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return fmt.Errorf("building word list request: %w", err)
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	slog.Info("downloading word list", "url", h.URL)
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", ErrDownloadFailed, resp.StatusCode)
	}

	if err := os.MkdirAll(h.CacheDir, 0o755); err != nil {
		return fmt.Errorf("creating word cache dir: %w", err)
	}

	// Write to a temp file first so a partial download never looks complete.
	tmp, err := os.CreateTemp(h.CacheDir, "words-*.tmp")
	if err != nil {
		return fmt.Errorf("creating word cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(resp.Body, maxDownloadSize+1))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	if n > maxDownloadSize {
		return fmt.Errorf("%w: word list larger than %d bytes", ErrDownloadFailed, maxDownloadSize)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("storing word cache file: %w", err)
	}
	slog.Info("word list cached", "path", path, "bytes", n)
	return nil
}
