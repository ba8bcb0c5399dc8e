package imdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"

	"github.com/kylegrant/costar/pkg/fsio"
	"github.com/kylegrant/costar/pkg/httpz"
	"github.com/kylegrant/costar/pkg/logger"
)

// lockFile guards the cache directory against concurrent runs downloading the
// same file.
const lockFile = ".costar.lock"

// Cache materializes the dataset files in a local directory. Presence is the
// only validity check: a file that already exists is trusted as-is and never
// re-downloaded.
type Cache struct {
	dir     string
	baseURL string
	client  *httpz.Client
	fs      fsio.FileIO
}

// NewCache creates a cache rooted at dir that fetches missing files from baseURL.
func NewCache(dir, baseURL string, client *httpz.Client, fs fsio.FileIO) *Cache {
	return &Cache{
		dir:     dir,
		baseURL: baseURL,
		client:  client,
		fs:      fs,
	}
}

// Ensure guarantees every dataset file exists under the cache directory,
// downloading any that are missing. It returns the local path per dataset.
// Network and filesystem errors abort the run; nothing is retried.
func (c *Cache) Ensure(ctx context.Context) (map[Dataset]string, error) {
	log := logger.FromCtx(ctx)

	if err := c.fs.MkdirAll(c.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", c.dir, err)
	}

	lock := flock.New(filepath.Join(c.dir, lockFile))
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock cache directory %s: %w", c.dir, err)
	}
	defer lock.Unlock()

	paths := make(map[Dataset]string, len(Datasets()))
	for _, d := range Datasets() {
		path := filepath.Join(c.dir, d.Filename())
		if c.fs.FileExists(path) {
			log.Infow("using cached dataset", "file", d.Filename())
			paths[d] = path
			continue
		}

		if err := c.download(ctx, d, path); err != nil {
			return nil, err
		}
		paths[d] = path
	}

	return paths, nil
}

// download fetches one dataset into a partial file and renames it into place
// so a torn write is never mistaken for a complete file.
func (c *Cache) download(ctx context.Context, d Dataset, path string) error {
	log := logger.FromCtx(ctx)

	url := c.baseURL + d.Filename()
	log.Infow("downloading dataset", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", d.Filename(), err)
	}
	defer resp.Body.Close()

	partial := path + ".partial"
	w, err := c.fs.Create(partial)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", partial, err)
	}

	n, err := io.Copy(w, resp.Body)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = c.fs.Remove(partial)
		return fmt.Errorf("failed to write %s: %w", partial, err)
	}

	if err := c.fs.Rename(partial, path); err != nil {
		_ = c.fs.Remove(partial)
		return fmt.Errorf("failed to publish %s: %w", path, err)
	}

	log.Infow("downloaded dataset", "file", d.Filename(), "size", humanize.Bytes(uint64(n)))
	return nil
}
