package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Response is the status and body of a completed GET.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher performs GET requests. An error means the request itself failed;
// a non-success status is reported through Response.
type Fetcher interface {
	Get(ctx context.Context, url string, headers map[string]string) (*Response, error)
}

// HTTPFetcher is a Fetcher backed by net/http with a client-wide timeout.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a fetcher whose requests all share timeout.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Get implements Fetcher.
func (f *HTTPFetcher) Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request %s: %v", ErrTransport, url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", ErrTransport, url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrTransport, url, err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
