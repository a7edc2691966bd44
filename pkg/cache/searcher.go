package cache

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dububu/mediatools/pkg/searcher"

	"github.com/dgraph-io/ristretto/v2"
)

type Searcher interface {
	searcher.Provider

	Close()
}

type cachedSearcher struct {
	ttl time.Duration

	cache    *ristretto.Cache[string, []searcher.Result]
	provider searcher.Provider
}

// NewSearcher memoizes successful searches for ttl. Errors and empty
// answers are never cached.
func NewSearcher(ttl time.Duration, p searcher.Provider) (Searcher, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, []searcher.Result]{
		NumCounters: 1e4,
		MaxCost:     1 << 12,
		BufferItems: 64,
	})

	if err != nil {
		return nil, err
	}

	return &cachedSearcher{
		ttl: ttl,

		cache:    cache,
		provider: p,
	}, nil
}

func (s *cachedSearcher) Search(ctx context.Context, query string, options *searcher.SearchOptions) ([]searcher.Result, error) {
	key := cacheKey(query, options)

	if results, ok := s.cache.Get(key); ok {
		return results, nil
	}

	results, err := s.provider.Search(ctx, query, options)

	if err != nil {
		return nil, err
	}

	if len(results) > 0 {
		s.cache.SetWithTTL(key, results, int64(len(results)), s.ttl)
		s.cache.Wait()
	}

	return results, nil
}

func (s *cachedSearcher) Close() {
	s.cache.Close()
}

func cacheKey(query string, options *searcher.SearchOptions) string {
	var b strings.Builder

	b.WriteString(strings.ToLower(strings.TrimSpace(query)))

	if options != nil {
		if options.Limit != nil {
			b.WriteString("|" + strconv.Itoa(*options.Limit))
		}

		if len(options.Formats) > 0 {
			b.WriteString("|" + strings.Join(options.Formats, ","))
		}
	}

	return b.String()
}
