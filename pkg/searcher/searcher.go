package searcher

import (
	"context"
)

type Provider interface {
	Search(ctx context.Context, query string, options *SearchOptions) ([]Result, error)
}

type SearchOptions struct {
	Limit *int

	// media formats to request, e.g. gif, tinygif, webp
	Formats []string
}

type Result struct {
	ID    string
	Title string

	// format name -> media url
	Media map[string]string
}
