package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

var validKey = regexp.MustCompile(`^[0-9a-f]{16,128}$`)

// Store is a file-based implementation of domain.ReportCache. Each report is
// one JSON file named after its key.
type Store struct{}

// New creates a new file-based cache store.
func New() *Store {
	return &Store{}
}

// Load reads a cached report. Returns (nil, nil) if the key is not cached.
func (s *Store) Load(dir, key string) (*domain.Report, error) {
	path, err := reportPath(dir, key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // a miss is not an error
		}
		return nil, err
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decoding cached report %s: %w", filepath.Base(path), err)
	}
	return &report, nil
}

// Save writes a report to the cache, creating directories as needed.
func (s *Store) Save(dir, key string, report *domain.Report) error {
	path, err := reportPath(dir, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cacheDir(dir), 0755); err != nil {
		return err
	}

	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Invalidate removes every cached report under dir.
func (s *Store) Invalidate(dir string) error {
	if err := os.RemoveAll(cacheDir(dir)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func cacheDir(dir string) string {
	return filepath.Join(dir, ".wcag", "cache")
}

func reportPath(dir, key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid cache key %q", key)
	}
	return filepath.Join(cacheDir(dir), key+".json"), nil
}
