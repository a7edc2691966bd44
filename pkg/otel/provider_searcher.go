package otel

import (
	"context"

	"github.com/dububu/mediatools/pkg/searcher"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type Searcher interface {
	Observable
	searcher.Provider
}

type observableSearcher struct {
	name     string
	provider string

	searcher searcher.Provider
}

func NewSearcher(provider, name string, p searcher.Provider) Searcher {
	return &observableSearcher{
		searcher: p,

		name:     name,
		provider: provider,
	}
}

func (p *observableSearcher) otelSetup() {
}

func (p *observableSearcher) Search(ctx context.Context, query string, options *searcher.SearchOptions) ([]searcher.Result, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "search "+p.name)
	defer span.End()

	result, err := p.searcher.Search(ctx, query, options)

	if EnableDebug {
		span.SetAttributes(attribute.String("query", query))
		span.SetAttributes(attribute.Int("results", len(result)))
	}

	return result, err
}
