package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/asteroid-belt/skillsm/internal/log"
	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// GitHubClient lists repository directories through the contents API,
// pacing requests with a rate limiter.
type GitHubClient struct {
	rest    *github.Client
	limiter *rate.Limiter
	mu      sync.Mutex

	requestCount int
}

// NewGitHubClient creates a client. With a token, requests are
// authenticated. rateLimit is requests per minute; zero or less disables
// pacing.
func NewGitHubClient(token string, rateLimit int, timeout time.Duration) *GitHubClient {
	httpClient := &http.Client{Timeout: timeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = timeout
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rateLimit)), rateLimit)
	}

	return &GitHubClient{
		rest:    github.NewClient(httpClient),
		limiter: limiter,
	}
}

// SetBaseURL points the client at a different API root.
func (c *GitHubClient) SetBaseURL(base string) error {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("parse GitHub API URL: %w", err)
	}
	c.rest.BaseURL = u
	return nil
}

// RequestCount returns the number of listing requests issued so far.
func (c *GitHubClient) RequestCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requestCount
}

// ListDirs returns the names of the immediate subdirectories of dir in
// source ("owner/repo") at branch. Files are skipped.
func (c *GitHubClient) ListDirs(ctx context.Context, source, dir, branch string) ([]string, error) {
	owner, repo, ok := strings.Cut(source, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("%w: invalid source repository %q", ErrParse, source)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	c.mu.Lock()
	c.requestCount++
	c.mu.Unlock()

	opts := &github.RepositoryContentGetOptions{Ref: branch}
	_, contents, resp, err := c.rest.Repositories.GetContents(ctx, owner, repo, dir, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s/%s@%s: %v", ErrTransport, source, dir, branch, err)
	}

	if resp != nil && resp.Rate.Limit > 0 && resp.Rate.Remaining < 10 {
		log.Warn("github rate limit low", "remaining", resp.Rate.Remaining, "reset", resp.Rate.Reset.Time)
	}

	var dirs []string
	for _, item := range contents {
		if item.GetType() == "dir" {
			dirs = append(dirs, item.GetName())
		}
	}
	return dirs, nil
}
