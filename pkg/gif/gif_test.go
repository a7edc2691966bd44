package gif_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/dububu/mediatools/pkg/gif"
	"github.com/dububu/mediatools/pkg/searcher"
	"github.com/dububu/mediatools/pkg/searcher/tenor"

	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	queries []string
	limits  []int

	err error
}

func (s *fakeSearcher) Search(ctx context.Context, query string, options *searcher.SearchOptions) ([]searcher.Result, error) {
	s.queries = append(s.queries, query)
	s.limits = append(s.limits, *options.Limit)

	if s.err != nil {
		return nil, s.err
	}

	return []searcher.Result{
		{
			ID:    "42",
			Title: "bubu hug",

			Media: map[string]string{
				"gif":                 "https://media.tenor.com/x/hug.gif",
				"webp":                "https://media.tenor.com/x/hug.webp",
				"tinygif":             "https://media.tenor.com/x/hug-tiny.gif",
				"tinygif_transparent": "https://media.tenor.com/x/hug-preview.gif",
			},
		},
	}, nil
}

func TestSearch(t *testing.T) {
	s := &fakeSearcher{}
	f := gif.New(s)

	gifs := f.BubuDudu(context.Background(), "hug", 5)

	require.Equal(t, []string{"bubu dudu hug"}, s.queries)
	require.Equal(t, []int{5}, s.limits)

	require.Equal(t, []gif.GIF{
		{
			ID:    "42",
			Title: "bubu hug",

			GIF:     "https://media.tenor.com/x/hug.gif",
			WebP:    "https://media.tenor.com/x/hug.webp",
			TinyGIF: "https://media.tenor.com/x/hug-tiny.gif",
			Preview: "https://media.tenor.com/x/hug-preview.gif",
		},
	}, gifs)
}

func TestSearchDefaults(t *testing.T) {
	s := &fakeSearcher{}
	f := gif.New(s)

	f.BubuDudu(context.Background(), "", 0)

	require.Equal(t, []string{"bubu dudu"}, s.queries)
	require.Equal(t, []int{gif.DefaultLimit}, s.limits)
}

func TestSearchError(t *testing.T) {
	f := gif.New(&fakeSearcher{err: errors.New("boom")})

	gifs := f.Search(context.Background(), "bubu dudu", 10)

	require.NotNil(t, gifs)
	require.Empty(t, gifs)
}

func TestSearchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	defer server.Close()

	s, err := tenor.New("bad-key", tenor.WithURL(server.URL))
	require.NoError(t, err)

	f := gif.New(s)

	gifs := f.Search(context.Background(), "bubu dudu love", 5)
	require.Empty(t, gifs)
}

func TestOffline(t *testing.T) {
	f := gif.New(nil)

	require.False(t, f.Online())
	require.Empty(t, f.BubuDudu(context.Background(), "love", 5))
}

func TestCatalog(t *testing.T) {
	s := &fakeSearcher{}
	f := gif.New(s)

	catalog := f.Catalog(context.Background())

	require.Len(t, catalog, len(gif.CatalogCategories))
	require.Len(t, s.queries, len(gif.CatalogCategories))

	for i, category := range gif.CatalogCategories {
		require.Equal(t, "bubu dudu "+category, s.queries[i])
		require.Equal(t, gif.CatalogLimit, s.limits[i])
		require.Len(t, catalog[category], 1)
	}

	path := filepath.Join(t.TempDir(), "gif_catalog.json")
	require.NoError(t, gif.WriteCatalog(path, catalog))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string][]map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, "https://media.tenor.com/x/hug-tiny.gif", doc["dance"][0]["tiny_gif"])
}

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hug.gif" {
			http.NotFound(w, r)
			return
		}

		w.Write([]byte("GIF89a"))
	}))

	defer server.Close()

	f := gif.New(nil, gif.WithClient(server.Client()))
	dir := t.TempDir()

	path := filepath.Join(dir, "nested", "hug.gif")
	require.True(t, f.Download(context.Background(), server.URL+"/hug.gif", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "GIF89a", string(data))

	missing := filepath.Join(dir, "missing.gif")
	require.False(t, f.Download(context.Background(), server.URL+"/missing.gif", missing))
	require.NoFileExists(t, missing)
}
