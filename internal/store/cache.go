package store

import (
	"context"
	"fmt"

	"github.com/verte-zerg/ttaw/internal/model"
)

// Cache is a dictionary cache backed by the SQLite database at Path. The
// database is opened on each Load or Save and closed afterwards, so nothing
// touches disk until the dictionary is needed.
type Cache struct {
	Path string
}

// Load reads the cached dictionary. An empty or new database is a miss.
func (c Cache) Load(ctx context.Context) (model.Dictionary, bool, error) {
	st, err := c.open()
	if err != nil {
		return nil, false, err
	}
	defer closeQuietly(st)
	return st.Load(ctx)
}

// Save replaces the cached dictionary.
func (c Cache) Save(ctx context.Context, dict model.Dictionary) error {
	st, err := c.open()
	if err != nil {
		return err
	}
	if err := st.Save(ctx, dict); err != nil {
		closeQuietly(st)
		return err
	}
	return st.Close()
}

func (c Cache) open() (*Store, error) {
	if c.Path == "" {
		return nil, fmt.Errorf("cache path is required")
	}
	st, err := Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db %s: %w", c.Path, err)
	}
	return st, nil
}

func closeQuietly(st *Store) {
	if cerr := st.Close(); cerr != nil {
		// Best-effort close after a read or failed write.
		_ = cerr
	}
}
