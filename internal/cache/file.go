package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"
)

// FileStore keeps the cache as one pretty-printed JSON object
// ({"<id>": <record>, ...}) at an afs URL.
type FileStore struct {
	URL string
	fs  afs.Service
}

// NewFileStore creates a store for URL
func NewFileStore(URL string) *FileStore {
	return &FileStore{URL: URL, fs: afs.New()}
}

// Load reads the cache file. A missing file yields an empty cache; an
// unreadable or corrupt one is an error.
func (s *FileStore) Load(ctx context.Context) (*Cache, error) {
	exists, err := s.fs.Exists(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("checking cache file %s: %w", s.URL, err)
	}
	if !exists {
		return New(), nil
	}

	data, err := s.fs.DownloadWithURL(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("reading cache file %s: %w", s.URL, err)
	}

	c := New()
	if len(bytes.TrimSpace(data)) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		return nil, fmt.Errorf("parsing cache file %s: %w", s.URL, err)
	}
	if c.entries == nil {
		c.entries = make(map[string]json.RawMessage)
	}
	return c, nil
}

// Save rewrites the whole file, keys sorted, two-space indent
func (s *FileStore) Save(ctx context.Context, c *Cache) error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing cache: %w", err)
	}
	data = append(data, '\n')
	if err := s.fs.Upload(ctx, s.URL, 0644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing cache file %s: %w", s.URL, err)
	}
	return nil
}

// Close is a no-op; files are not held open between calls
func (s *FileStore) Close() error {
	return nil
}
