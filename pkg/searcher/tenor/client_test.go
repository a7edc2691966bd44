package tenor_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/dububu/mediatools/pkg/searcher"
	"github.com/dububu/mediatools/pkg/searcher/tenor"

	"github.com/stretchr/testify/require"
)

const searchResponse = `{
  "results": [
    {
      "id": "1234",
      "title": "bubu hug",
      "media_formats": {
        "gif": {"url": "https://media.tenor.com/a/hug.gif", "dims": [498, 498]},
        "webp": {"url": "https://media.tenor.com/a/hug.webp"},
        "tinygif": {"url": "https://media.tenor.com/a/hug-tiny.gif"}
      }
    }
  ],
  "next": "CAgQAA"
}`

func TestSearch(t *testing.T) {
	var query url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}

		query = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchResponse))
	}))

	defer server.Close()

	c, err := tenor.New("test-key", tenor.WithURL(server.URL+"/"))
	require.NoError(t, err)

	limit := 5

	results, err := c.Search(context.Background(), "bubu dudu hug", &searcher.SearchOptions{
		Limit: &limit,
	})

	require.NoError(t, err)

	require.Equal(t, "test-key", query.Get("key"))
	require.Equal(t, "bubu dudu hug", query.Get("q"))
	require.Equal(t, "5", query.Get("limit"))
	require.Equal(t, "gif,tinygif,webp", query.Get("media_filter"))

	require.Len(t, results, 1)
	require.Equal(t, "1234", results[0].ID)
	require.Equal(t, "bubu hug", results[0].Title)
	require.Equal(t, "https://media.tenor.com/a/hug.gif", results[0].Media["gif"])
	require.Equal(t, "https://media.tenor.com/a/hug-tiny.gif", results[0].Media["tinygif"])
}

func TestSearchStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	defer server.Close()

	c, err := tenor.New("test-key", tenor.WithURL(server.URL))
	require.NoError(t, err)

	_, err = c.Search(context.Background(), "bubu dudu", nil)

	var statusErr *tenor.StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
}

func TestNewRequiresToken(t *testing.T) {
	_, err := tenor.New("")
	require.Error(t, err)
}
