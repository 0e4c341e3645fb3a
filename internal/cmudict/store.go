package cmudict

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/verte-zerg/ttaw/internal/model"
)

// Store is the process-wide pronunciation lookup. The dictionary is loaded at
// most once, on first use, and is read-only afterwards. Concurrent first
// callers wait for the same load and see the same result or error.
type Store struct {
	source model.Source
	cache  Cache
	logger *slog.Logger

	once sync.Once
	dict model.Dictionary
	err  error
}

// New returns a Store that reads cache first and downloads source.URL on a
// miss. A nil cache disables persistence.
func New(source model.Source, cache Cache, logger *slog.Logger) *Store {
	if source.URL == "" {
		source.URL = DefaultURL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{source: source, cache: cache, logger: logger}
}

// FromDictionary returns a Store that serves dict without touching the network
// or disk.
func FromDictionary(dict model.Dictionary) *Store {
	s := &Store{dict: dict, logger: slog.New(slog.DiscardHandler)}
	s.once.Do(func() {})
	return s
}

// Load returns the dictionary, loading it on the first call. The first
// caller's context bounds the load; the outcome is kept for every later call,
// including a failure.
func (s *Store) Load(ctx context.Context) (model.Dictionary, error) {
	s.once.Do(func() {
		s.dict, s.err = s.load(ctx)
	})
	return s.dict, s.err
}

// Lookup returns the pronunciations of word. Unknown words report false.
func (s *Store) Lookup(ctx context.Context, word string) ([]model.Pronunciation, bool, error) {
	dict, err := s.Load(ctx)
	if err != nil {
		return nil, false, err
	}
	variants, ok := dict.Lookup(word)
	return variants, ok, nil
}

// Refresh downloads the dictionary and overwrites the cache, ignoring any
// cached copy. A Store that already loaded keeps serving its first dictionary.
func (s *Store) Refresh(ctx context.Context) (model.Dictionary, error) {
	dict, err := s.download(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, dict); err != nil {
		return nil, err
	}
	s.once.Do(func() {
		s.dict = dict
	})
	return dict, nil
}

func (s *Store) load(ctx context.Context) (model.Dictionary, error) {
	if s.cache != nil {
		dict, ok, err := s.cache.Load(ctx)
		if err != nil {
			return nil, cacheError(err)
		}
		if ok {
			s.logger.Debug("dictionary cache hit", "path", s.source.CachePath, "words", len(dict))
			return dict, nil
		}
		s.logger.Debug("dictionary cache miss", "path", s.source.CachePath)
	}

	dict, err := s.download(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, dict); err != nil {
		return nil, err
	}
	return dict, nil
}

func (s *Store) download(ctx context.Context) (model.Dictionary, error) {
	s.logger.Info("fetching dictionary", "url", s.source.URL)
	dict, stats, err := Download(ctx, s.source.URL, s.source.Timeout)
	if err != nil {
		return nil, err
	}
	s.logger.Info("dictionary parsed",
		"lines", stats.TotalLines,
		"comments", stats.CommentLines,
		"entries", stats.ParsedLines,
		"words", stats.UniqueWords,
	)
	return dict, nil
}

func (s *Store) save(ctx context.Context, dict model.Dictionary) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Save(ctx, dict); err != nil {
		return cacheError(err)
	}
	s.logger.Info("dictionary cached", "path", s.source.CachePath, "format", s.source.Format)
	return nil
}

func cacheError(err error) error {
	if errors.Is(err, ErrCacheCorrupt) || errors.Is(err, ErrCache) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCache, err)
}
