package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/asteroid-belt/skillsm/internal/log"
	"github.com/asteroid-belt/skillsm/internal/models"
)

// CatalogClient fetches and ranks the catalog's views.
type CatalogClient struct {
	fetcher Fetcher
	baseURL string
}

// NewCatalogClient creates a client for the catalog hosted at baseURL.
func NewCatalogClient(fetcher Fetcher, baseURL string) *CatalogClient {
	return &CatalogClient{
		fetcher: fetcher,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// ViewURL returns the page URL for a view.
func (c *CatalogClient) ViewURL(view models.ViewKind) string {
	return fmt.Sprintf("%s/?view=%s", c.baseURL, view.Slug())
}

// FetchView downloads the view's page and returns its entries sorted by
// the view's ranking rule.
func (c *CatalogClient) FetchView(ctx context.Context, view models.ViewKind) ([]models.CatalogEntry, error) {
	url := c.ViewURL(view)

	resp, err := c.fetcher.Get(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: fetch %s: HTTP status %d", ErrTransport, url, resp.StatusCode)
	}

	entries, err := ExtractEntries(string(resp.Body))
	if err != nil {
		return nil, err
	}

	view.Sort(entries)
	log.Debug("catalog view fetched", "view", view.Slug(), "entries", len(entries))
	return entries, nil
}
