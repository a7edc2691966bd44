package limiter

import (
	"context"

	"github.com/dububu/mediatools/pkg/searcher"

	"golang.org/x/time/rate"
)

type Searcher interface {
	Limiter
	searcher.Provider
}

type limitedSearcher struct {
	limiter  *rate.Limiter
	provider searcher.Provider
}

func NewSearcher(l *rate.Limiter, p searcher.Provider) Searcher {
	return &limitedSearcher{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedSearcher) limiterSetup() {
}

func (p *limitedSearcher) Search(ctx context.Context, query string, options *searcher.SearchOptions) ([]searcher.Result, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.provider.Search(ctx, query, options)
}
