package cmudict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/ttaw/internal/model"
)

// Cache persists a parsed dictionary between runs. Load reports false with a
// nil error when nothing has been stored yet.
type Cache interface {
	Load(ctx context.Context) (model.Dictionary, bool, error)
	Save(ctx context.Context, dict model.Dictionary) error
}

// JSONCache keeps the dictionary as a single JSON object mapping each
// headword to its list of phoneme lists.
type JSONCache struct {
	Path string
}

// Load reads the cache file. A missing file is a miss.
func (c JSONCache) Load(_ context.Context) (model.Dictionary, bool, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}
	var dict model.Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %w", ErrCacheCorrupt, c.Path, err)
	}
	if dict == nil {
		return nil, false, fmt.Errorf("%w: %s: not an object", ErrCacheCorrupt, c.Path)
	}
	return dict, true, nil
}

// Save writes the dictionary through a temp file and renames it into place.
func (c JSONCache) Save(_ context.Context, dict model.Dictionary) error {
	if c.Path == "" {
		return fmt.Errorf("cache path is required")
	}
	dir := filepath.Dir(c.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "cmudict-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp cache: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := json.NewEncoder(tmpFile).Encode(dict); err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp cache: %w", err)
	}
	if err := os.Rename(tmpPath, c.Path); err != nil {
		return fmt.Errorf("failed to move cache into place: %w", err)
	}
	return nil
}
