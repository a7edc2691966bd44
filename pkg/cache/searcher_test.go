package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dububu/mediatools/pkg/cache"
	"github.com/dububu/mediatools/pkg/searcher"

	"github.com/stretchr/testify/require"
)

type countingSearcher struct {
	calls int
	err   error
}

func (s *countingSearcher) Search(ctx context.Context, query string, options *searcher.SearchOptions) ([]searcher.Result, error) {
	s.calls++

	if s.err != nil {
		return nil, s.err
	}

	return []searcher.Result{{ID: query}}, nil
}

func TestSearcherCachesResults(t *testing.T) {
	stub := &countingSearcher{}

	s, err := cache.NewSearcher(time.Minute, stub)
	require.NoError(t, err)
	defer s.Close()

	limit := 10

	for range 3 {
		results, err := s.Search(context.Background(), "bubu dudu love", &searcher.SearchOptions{Limit: &limit})
		require.NoError(t, err)
		require.Equal(t, "bubu dudu love", results[0].ID)
	}

	require.Equal(t, 1, stub.calls)

	_, err = s.Search(context.Background(), "bubu dudu hug", &searcher.SearchOptions{Limit: &limit})
	require.NoError(t, err)
	require.Equal(t, 2, stub.calls)
}

func TestSearcherSkipsErrors(t *testing.T) {
	stub := &countingSearcher{err: errors.New("boom")}

	s, err := cache.NewSearcher(time.Minute, stub)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Search(context.Background(), "bubu", nil)
	require.Error(t, err)

	_, err = s.Search(context.Background(), "bubu", nil)
	require.Error(t, err)

	require.Equal(t, 2, stub.calls)
}
