package tenor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dububu/mediatools/pkg/searcher"
)

var _ searcher.Provider = &Client{}

const DefaultURL = "https://tenor.googleapis.com/v2"

var DefaultFormats = []string{"gif", "tinygif", "webp"}

type Client struct {
	url    string
	token  string
	client *http.Client
}

// StatusError reports a non-200 answer from the search endpoint.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tenor: unexpected status %d", e.StatusCode)
}

func New(token string, options ...Option) (*Client, error) {
	c := &Client{
		url:    DefaultURL,
		token:  token,
		client: http.DefaultClient,
	}

	for _, option := range options {
		option(c)
	}

	if c.token == "" {
		return nil, errors.New("invalid token")
	}

	c.url = strings.TrimRight(c.url, "/")

	return c, nil
}

func (c *Client) Search(ctx context.Context, query string, options *searcher.SearchOptions) ([]searcher.Result, error) {
	if options == nil {
		options = new(searcher.SearchOptions)
	}

	formats := options.Formats

	if len(formats) == 0 {
		formats = DefaultFormats
	}

	values := url.Values{}
	values.Set("key", c.token)
	values.Set("q", query)
	values.Set("media_filter", strings.Join(formats, ","))

	if options.Limit != nil {
		values.Set("limit", strconv.Itoa(*options.Limit))
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.url+"/search?"+values.Encode(), nil)

	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var data SearchResponse

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	results := make([]searcher.Result, 0, len(data.Results))

	for _, r := range data.Results {
		result := searcher.Result{
			ID:    r.ID,
			Title: r.Title,

			Media: make(map[string]string),
		}

		for name, media := range r.MediaFormats {
			result.Media[name] = media.URL
		}

		results = append(results, result)
	}

	return results, nil
}
