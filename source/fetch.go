/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"bennypowers.dev/brandmap/internal/version"
)

const (
	// DefaultTimeout bounds a single CDN fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize caps a fetched stylesheet (2 MB).
	DefaultMaxSize int64 = 2 * 1024 * 1024
)

var (
	// ErrNotStylesheet is returned when the CDN answers with something other
	// than CSS or plain text, such as an HTML error page or a package listing.
	ErrNotStylesheet = errors.New("response is not a stylesheet")

	// ErrTooLarge is returned when a response exceeds the fetcher's size cap.
	ErrTooLarge = errors.New("stylesheet too large")
)

// utf8BOM is stripped from fetched stylesheets; the scanner compares scope
// markers by exact line equality.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stylesheetTypes are the media types accepted from the CDN.
var stylesheetTypes = map[string]bool{
	"text/css":   true,
	"text/plain": true,
}

// Fetcher retrieves a stylesheet by URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches stylesheets over HTTP.
type HTTPFetcher struct {
	maxSize int64
	client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher that rejects responses over maxSize bytes.
func NewHTTPFetcher(maxSize int64) *HTTPFetcher {
	return &HTTPFetcher{maxSize: maxSize, client: &http.Client{}}
}

// Fetch returns the stylesheet at url with any UTF-8 byte order mark removed.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStylesheet(resp); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	css, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(css)) > f.maxSize {
		return nil, fmt.Errorf("%w: %s exceeds maximum size of %d bytes", ErrTooLarge, url, f.maxSize)
	}
	return bytes.TrimPrefix(css, utf8BOM), nil
}

func (f *HTTPFetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "brandmap/"+version.Get())
	req.Header.Set("Accept", "text/css, text/plain;q=0.5")

	resp, err := f.client.Do(req)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return nil, fmt.Errorf("timeout fetching %s: %w", url, err)
	case err != nil:
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}
	return resp, nil
}

// checkStylesheet accepts text/css and text/plain responses. A missing
// Content-Type is accepted.
func checkStylesheet(resp *http.Response) error {
	header := resp.Header.Get("Content-Type")
	if header == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return fmt.Errorf("%w: bad Content-Type %q", ErrNotStylesheet, header)
	}
	if !stylesheetTypes[mediaType] {
		return fmt.Errorf("%w: got %s", ErrNotStylesheet, mediaType)
	}
	return nil
}
