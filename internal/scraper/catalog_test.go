package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("view")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &gotQuery
}

func TestCatalogClient_FetchAllTimeSorted(t *testing.T) {
	page := `<script>[{"skills":[` +
		`{"source":"a/a","skillId":"A","name":"A","installs":5},` +
		`{"source":"b/b","skillId":"B","name":"B","installs":9}]}]</script>`
	server, query := catalogServer(t, http.StatusOK, page)

	client := NewCatalogClient(NewHTTPFetcher(5*time.Second, "skillsm-test"), server.URL+"/")
	entries, err := client.FetchView(context.Background(), models.ViewAllTime)
	require.NoError(t, err)

	assert.Equal(t, "all-time", *query)
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].SkillID)
	assert.Equal(t, "A", entries[1].SkillID)
}

func TestCatalogClient_FetchHotSortedByDelta(t *testing.T) {
	page := `[{"skills":[` +
		`{"source":"a/a","skillId":"A","name":"A","installs":500,"change":1},` +
		`{"source":"b/b","skillId":"B","name":"B","installs":2,"change":40},` +
		`{"source":"c/c","skillId":"C","name":"C","installs":3}]}]`
	server, query := catalogServer(t, http.StatusOK, page)

	client := NewCatalogClient(NewHTTPFetcher(5*time.Second, ""), server.URL)
	entries, err := client.FetchView(context.Background(), models.ViewHot)
	require.NoError(t, err)

	assert.Equal(t, "hot", *query)
	ids := []string{entries[0].SkillID, entries[1].SkillID, entries[2].SkillID}
	assert.Equal(t, []string{"B", "A", "C"}, ids)
}

func TestCatalogClient_HTTPErrorIsTransport(t *testing.T) {
	server, _ := catalogServer(t, http.StatusServiceUnavailable, "down")

	client := NewCatalogClient(NewHTTPFetcher(5*time.Second, ""), server.URL)
	_, err := client.FetchView(context.Background(), models.ViewTrending)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.Contains(t, err.Error(), "503")
}

func TestCatalogClient_UnparseablePage(t *testing.T) {
	server, _ := catalogServer(t, http.StatusOK, "<html></html>")

	client := NewCatalogClient(NewHTTPFetcher(5*time.Second, ""), server.URL)
	_, err := client.FetchView(context.Background(), models.ViewAllTime)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestCatalogClient_ViewURL(t *testing.T) {
	client := NewCatalogClient(nil, "https://skills.sh/")
	assert.Equal(t, "https://skills.sh/?view=all-time", client.ViewURL(models.ViewAllTime))
	assert.Equal(t, "https://skills.sh/?view=trending", client.ViewURL(models.ViewTrending))
	assert.Equal(t, "https://skills.sh/?view=hot", client.ViewURL(models.ViewHot))
}
