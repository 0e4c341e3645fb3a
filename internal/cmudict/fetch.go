package cmudict

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/verte-zerg/ttaw/internal/model"
)

// DefaultURL points at the maintained plain-text CMU dictionary.
const DefaultURL = "https://raw.githubusercontent.com/cmusphinx/cmudict/master/cmudict.dict"

const defaultTimeout = 60 * time.Second

var (
	// ErrFetch reports a failed download of the dictionary source.
	ErrFetch = errors.New("dictionary fetch failed")
	// ErrCache reports a failed read or write of the persisted dictionary.
	ErrCache = errors.New("dictionary cache failed")
	// ErrCacheCorrupt reports a persisted dictionary that could not be decoded.
	ErrCacheCorrupt = errors.New("dictionary cache corrupt")
)

// Download fetches and parses the dictionary at url with a single bounded
// request. Sources ending in ".gz" are decompressed.
func Download(ctx context.Context, url string, timeout time.Duration) (model.Dictionary, Stats, error) {
	if url == "" {
		return nil, Stats{}, fmt.Errorf("%w: dictionary url is required", ErrFetch)
	}
	resp, err := httpRequest(ctx, url, timeout)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, Stats{}, fmt.Errorf("%w: unexpected dictionary status: %s", ErrFetch, resp.Status)
	}

	var body io.Reader = resp.Body
	if strings.HasSuffix(url, ".gz") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("%w: failed to create gzip reader: %w", ErrFetch, err)
		}
		defer func() {
			_ = gz.Close()
		}()
		body = gz
	}

	dict, stats, err := Parse(body)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: failed to read dictionary: %w", ErrFetch, err)
	}
	if len(dict) == 0 {
		return nil, Stats{}, fmt.Errorf("%w: dictionary contained no entries", ErrFetch)
	}
	return dict, stats, nil
}

func httpRequest(ctx context.Context, url string, timeout time.Duration) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}
