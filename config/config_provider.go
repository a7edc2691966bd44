package config

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dububu/mediatools/pkg/generator"
	"github.com/dububu/mediatools/pkg/limiter"
	"github.com/dububu/mediatools/pkg/otel"
	"github.com/dububu/mediatools/pkg/provider"
	"github.com/dububu/mediatools/pkg/provider/google"
	"github.com/dububu/mediatools/pkg/provider/openai"
	"github.com/dububu/mediatools/pkg/provider/replicate"
	"github.com/dububu/mediatools/pkg/provider/replicate/flux"

	"golang.org/x/time/rate"
)

type providerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`

	Limit *int         `yaml:"limit"`
	Proxy *proxyConfig `yaml:"proxy"`
}

type providerContext struct {
	Client  *http.Client
	Limiter *rate.Limiter
}

func (cfg *providerConfig) context() (providerContext, error) {
	client, err := cfg.Proxy.httpClient()

	if err != nil {
		return providerContext{}, err
	}

	return providerContext{
		Client:  client,
		Limiter: createLimiter(cfg.Limit),
	}, nil
}

// Renderer returns the configured image generation backend or
// generator.ErrMissingCredential.
func (cfg *Config) Renderer() (provider.Renderer, error) {
	if cfg.renderer == nil {
		return nil, generator.ErrMissingCredential
	}

	return cfg.renderer, nil
}

func (cfg *Config) RegisterRenderer(p provider.Renderer) {
	cfg.renderer = p
}

func (cfg *Config) registerRenderer(f *configFile) error {
	config := f.Renderer

	if config == nil {
		return nil
	}

	if config.Token == "" {
		return nil
	}

	context, err := config.context()

	if err != nil {
		return err
	}

	renderer, err := createRenderer(*config, context)

	if err != nil {
		return err
	}

	if context.Limiter != nil {
		renderer = limiter.NewRenderer(context.Limiter, renderer)
	}

	if _, ok := renderer.(otel.Renderer); !ok {
		renderer = otel.NewRenderer(config.Type, config.Model, renderer)
	}

	cfg.RegisterRenderer(renderer)

	return nil
}

func createRenderer(cfg providerConfig, context providerContext) (provider.Renderer, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "replicate":
		return replicateRenderer(cfg, context)

	case "openai":
		return openaiRenderer(cfg, context)

	case "gemini", "google":
		return googleRenderer(cfg, context)

	default:
		return nil, errors.New("invalid renderer type: " + cfg.Type)
	}
}

func replicateRenderer(cfg providerConfig, context providerContext) (provider.Renderer, error) {
	var options []replicate.Option

	if cfg.URL != "" {
		options = append(options, replicate.WithURL(cfg.URL))
	}

	if cfg.Token != "" {
		options = append(options, replicate.WithToken(cfg.Token))
	}

	if context.Client != nil {
		options = append(options, replicate.WithClient(context.Client))
	}

	return flux.NewRenderer(cfg.Model, options...)
}

func openaiRenderer(cfg providerConfig, context providerContext) (provider.Renderer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	if context.Client != nil {
		options = append(options, openai.WithClient(context.Client))
	}

	return openai.NewRenderer(cfg.URL, cfg.Model, options...)
}

func googleRenderer(cfg providerConfig, context providerContext) (provider.Renderer, error) {
	options := googleOptions(cfg, context)
	return google.NewRenderer(cfg.Model, options...)
}

func googleOptions(cfg providerConfig, context providerContext) []google.Option {
	var options []google.Option

	if cfg.URL != "" {
		options = append(options, google.WithURL(cfg.URL))
	}

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	if context.Client != nil {
		options = append(options, google.WithClient(context.Client))
	}

	return options
}

func (cfg *Config) Completer() (provider.Completer, error) {
	if cfg.completer == nil {
		return nil, generator.ErrMissingCredential
	}

	return cfg.completer, nil
}

func (cfg *Config) RegisterCompleter(p provider.Completer) {
	cfg.completer = p
}

func (cfg *Config) registerCompleter(f *configFile) error {
	config := f.Completer

	if config == nil || config.Token == "" {
		return nil
	}

	context, err := config.context()

	if err != nil {
		return err
	}

	completer, err := createCompleter(*config, context)

	if err != nil {
		return err
	}

	if context.Limiter != nil {
		completer = limiter.NewCompleter(context.Limiter, completer)
	}

	if _, ok := completer.(otel.Completer); !ok {
		completer = otel.NewCompleter(config.Type, config.Model, completer)
	}

	cfg.RegisterCompleter(completer)

	return nil
}

func createCompleter(cfg providerConfig, context providerContext) (provider.Completer, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "gemini", "google":
		return google.NewCompleter(cfg.Model, googleOptions(cfg, context)...)

	default:
		return nil, errors.New("invalid completer type: " + cfg.Type)
	}
}
