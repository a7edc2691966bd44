package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dububu/mediatools/pkg/cache"
	"github.com/dububu/mediatools/pkg/limiter"
	"github.com/dububu/mediatools/pkg/otel"
	"github.com/dububu/mediatools/pkg/searcher"
	"github.com/dububu/mediatools/pkg/searcher/tenor"
)

type searcherConfig struct {
	providerConfig `yaml:",inline"`

	// how long successful searches are kept; zero disables caching
	Cache time.Duration `yaml:"cache"`
}

// Searcher returns the configured GIF search provider, or nil when no search
// credential is configured.
func (cfg *Config) Searcher() searcher.Provider {
	return cfg.searcher
}

func (cfg *Config) RegisterSearcher(p searcher.Provider) {
	cfg.searcher = p
}

func (cfg *Config) registerSearcher(f *configFile) error {
	config := f.Searcher

	if config == nil || config.Token == "" {
		return nil
	}

	context, err := config.context()

	if err != nil {
		return err
	}

	s, err := createSearcher(*config, context)

	if err != nil {
		return err
	}

	if context.Limiter != nil {
		s = limiter.NewSearcher(context.Limiter, s)
	}

	if _, ok := s.(otel.Searcher); !ok {
		s = otel.NewSearcher(config.Type, "gifs", s)
	}

	if config.Cache > 0 {
		cached, err := cache.NewSearcher(config.Cache, s)

		if err != nil {
			return err
		}

		slog.Debug("search cache enabled", "ttl", config.Cache)

		cfg.closers = append(cfg.closers, cached.Close)
		s = cached
	}

	cfg.RegisterSearcher(s)

	return nil
}

func createSearcher(cfg searcherConfig, context providerContext) (searcher.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "tenor":
		return tenorSearch(cfg, context)

	default:
		return nil, errors.New("invalid search type: " + cfg.Type)
	}
}

func tenorSearch(cfg searcherConfig, context providerContext) (searcher.Provider, error) {
	var options []tenor.Option

	if cfg.URL != "" {
		options = append(options, tenor.WithURL(cfg.URL))
	}

	if context.Client != nil {
		options = append(options, tenor.WithClient(context.Client))
	}

	return tenor.New(cfg.Token, options...)
}
