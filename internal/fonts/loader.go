package fonts

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sync"

	"golang.org/x/image/font/opentype"

	"github.com/alexisbeaulieu97/snapcode/internal/logger"
)

// maxFontBytes caps a single download.
const maxFontBytes = 32 << 20

// Loader fetches remote font files into a cache directory. Each URL is
// fetched at most once per process and files already on disk are reused.
type Loader struct {
	dir    string
	client *http.Client
	log    *logger.Logger

	mu     sync.Mutex
	loaded map[string][]byte
}

// NewLoader creates a loader that stores files under dir. An empty dir
// resolves to the user cache directory.
func NewLoader(dir string, client *http.Client, log *logger.Logger) *Loader {
	if dir == "" {
		dir = DefaultCacheDir()
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{dir: dir, client: client, log: log, loaded: make(map[string][]byte)}
}

// DefaultCacheDir returns <user cache>/snapcode/fonts, or a temp-dir path
// when the user cache directory is unknown.
func DefaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "snapcode", "fonts")
}

// Ensure makes the font's files available and returns their bytes.
// Embedded fonts never touch the network.
func (l *Loader) Ensure(ctx context.Context, f Font) (Data, error) {
	if f.embedded != nil {
		return *f.embedded, nil
	}
	if f.RegularURL == "" {
		return Data{}, fmt.Errorf("font %q has no source", f.ID)
	}

	regular, err := l.fetch(ctx, f.ID, f.RegularURL)
	if err != nil {
		return Data{}, fmt.Errorf("font %q regular: %w", f.ID, err)
	}

	data := Data{Regular: regular, Bold: regular}
	if f.BoldURL != "" {
		bold, err := l.fetch(ctx, f.ID, f.BoldURL)
		if err != nil {
			return Data{}, fmt.Errorf("font %q bold: %w", f.ID, err)
		}
		data.Bold = bold
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, id, url string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.loaded[url]; ok {
		return b, nil
	}

	target := filepath.Join(l.dir, cacheName(id, url))
	if b, err := os.ReadFile(target); err == nil {
		if _, perr := opentype.Parse(b); perr == nil {
			l.log.Debug(fmt.Sprintf("font cache hit %s", target))
			l.loaded[url] = b
			return b, nil
		}
	}

	b, err := l.download(ctx, url)
	if err != nil {
		return nil, err
	}
	if _, err := opentype.Parse(b); err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	if err := writeAtomic(target, b); err != nil {
		l.log.Warn(fmt.Sprintf("font cache write failed: %v", err))
	}
	l.loaded[url] = b
	return b, nil
}

// cacheName keys a cached file by font and URL so files that share a base
// name on different hosts or paths never overwrite each other.
func cacheName(id, url string) string {
	sum := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%s-%x-%s", id, sum[:4], path.Base(url))
}

func (l *Loader) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	l.log.WithFields(map[string]any{"url": url}).Info("downloading font")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %s", url, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxFontBytes))
}

func writeAtomic(target string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), ".font-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), target)
}
