package gif

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dububu/mediatools/pkg/searcher"
)

const (
	BaseQuery    = "bubu dudu"
	DefaultLimit = 20
	CatalogLimit = 10
)

var CatalogCategories = []string{"love", "kiss", "hug", "sleep", "cute", "dance", "fighting"}

type GIF struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	GIF     string `json:"gif"`
	WebP    string `json:"webp"`
	TinyGIF string `json:"tiny_gif"`
	Preview string `json:"preview"`
}

type Fetcher struct {
	searcher searcher.Provider
	client   *http.Client
}

type Option func(*Fetcher)

func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// New returns a Fetcher backed by s. A nil searcher is allowed: searches
// then return nothing and callers fall back to Presets.
func New(s searcher.Provider, options ...Option) *Fetcher {
	f := &Fetcher{
		searcher: s,
		client:   http.DefaultClient,
	}

	for _, option := range options {
		option(f)
	}

	if f.searcher == nil {
		slog.Warn("no gif search credential configured, using preset urls")
	}

	return f
}

func (f *Fetcher) Online() bool {
	return f.searcher != nil
}

// Search queries the provider. Errors are logged and yield an empty list.
func (f *Fetcher) Search(ctx context.Context, query string, limit int) []GIF {
	if f.searcher == nil {
		return []GIF{}
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	results, err := f.searcher.Search(ctx, query, &searcher.SearchOptions{
		Limit: &limit,
	})

	if err != nil {
		slog.ErrorContext(ctx, "gif search failed", "query", query, "error", err)
		return []GIF{}
	}

	gifs := make([]GIF, 0, len(results))

	for _, r := range results {
		gifs = append(gifs, GIF{
			ID:    r.ID,
			Title: r.Title,

			GIF:     r.Media["gif"],
			WebP:    r.Media["webp"],
			TinyGIF: r.Media["tinygif"],
			Preview: r.Media["tinygif_transparent"],
		})
	}

	return gifs
}

func Query(category string) string {
	if category == "" {
		return BaseQuery
	}

	return BaseQuery + " " + category
}

func (f *Fetcher) BubuDudu(ctx context.Context, category string, limit int) []GIF {
	return f.Search(ctx, Query(category), limit)
}

// Catalog fetches CatalogLimit GIFs for each of CatalogCategories.
func (f *Fetcher) Catalog(ctx context.Context) map[string][]GIF {
	catalog := make(map[string][]GIF)

	for _, category := range CatalogCategories {
		slog.InfoContext(ctx, "fetching gifs", "category", category)
		catalog[category] = f.BubuDudu(ctx, category, CatalogLimit)
	}

	return catalog
}

func WriteCatalog(path string, catalog map[string][]GIF) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(catalog, "", "  ")

	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Download streams url to path, creating parent directories. It reports
// whether the file was written.
func (f *Fetcher) Download(ctx context.Context, url, path string) bool {
	if err := f.download(ctx, url, path); err != nil {
		slog.ErrorContext(ctx, "download error", "url", url, "error", err)
		return false
	}

	return true
}

func (f *Fetcher) download(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)

	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &httpStatusError{status: resp.Status}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)

	if err != nil {
		return err
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(path)

		return err
	}

	return file.Close()
}

type httpStatusError struct {
	status string
}

func (e *httpStatusError) Error() string {
	return "unexpected status: " + e.status
}
