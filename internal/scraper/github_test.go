package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGitHubClient(t *testing.T, handler http.HandlerFunc) *GitHubClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewGitHubClient("", 0, 5*time.Second)
	require.NoError(t, client.SetBaseURL(server.URL))
	return client
}

func TestGitHubClient_ListDirs(t *testing.T) {
	var gotPath, gotRef, gotAccept string
	client := newTestGitHubClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRef = r.URL.Query().Get("ref")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"type":"dir","name":"pdf","path":"skills/pdf"},
			{"type":"file","name":"README.md","path":"skills/README.md"},
			{"type":"dir","name":"docx","path":"skills/docx"}
		]`))
	})

	dirs, err := client.ListDirs(context.Background(), "anthropics/skills", "skills", "main")
	require.NoError(t, err)
	assert.Equal(t, []string{"pdf", "docx"}, dirs)

	assert.Equal(t, "/repos/anthropics/skills/contents/skills", gotPath)
	assert.Equal(t, "main", gotRef)
	assert.Contains(t, gotAccept, "application/vnd.github.v3+json")
	assert.Equal(t, 1, client.RequestCount())
}

func TestGitHubClient_ListDirsNotFound(t *testing.T) {
	client := newTestGitHubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	_, err := client.ListDirs(context.Background(), "o/r", ".claude/skills", "master")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestGitHubClient_InvalidSource(t *testing.T) {
	client := NewGitHubClient("", 0, time.Second)

	_, err := client.ListDirs(context.Background(), "no-slash", "skills", "main")
	assert.True(t, errors.Is(err, ErrParse))
	assert.Equal(t, 0, client.RequestCount())
}

// The listing client and resolver together against a fake GitHub.
func TestResolver_WithGitHubClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/contents/plugins", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ref") != "main" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`[{"type":"dir","name":"demo"}]`))
	})
	mux.HandleFunc("/repos/o/r/contents/plugins/demo/skills", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"type":"dir","name":"foo"}]`))
	})
	mux.HandleFunc("/raw/o/r/main/plugins/demo/skills/foo/SKILL.md", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# foo\n"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	gh := NewGitHubClient("", 0, 5*time.Second)
	require.NoError(t, gh.SetBaseURL(server.URL))
	fetcher := NewHTTPFetcher(5*time.Second, "skillsm-test")

	doc, err := NewResolver(fetcher, gh, server.URL+"/raw").Resolve(context.Background(), "o/r", "foo")
	require.NoError(t, err)
	assert.Equal(t, "# foo\n", doc)
	assert.Equal(t, 8, gh.RequestCount())
}
