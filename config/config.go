package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dububu/mediatools/pkg/generator"
	"github.com/dububu/mediatools/pkg/provider"
	"github.com/dububu/mediatools/pkg/searcher"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "mediatools.yaml"
	EnvFile     = ".env.local"
)

// used when no config file exists
const defaultConfig = `
output: generated_images

renderer:
  type: replicate
  token: ${REPLICATE_API_TOKEN}

searcher:
  type: tenor
  token: ${TENOR_API_KEY}
  cache: 1h

completer:
  type: google
  token: ${GEMINI_API_KEY}
`

type Config struct {
	Output string

	renderer  provider.Renderer
	completer provider.Completer
	searcher  searcher.Provider

	closers []func()
}

// Load reads EnvFile into the environment and parses path. A missing file at
// DefaultPath falls back to the built-in configuration.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)

	if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
		slog.Debug("config file not found, using defaults", "path", path)
		data, err = []byte(defaultConfig), nil
	}

	if err != nil {
		return nil, err
	}

	return parse(data)
}

func Parse(path string) (*Config, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return parse(data)
}

func parse(data []byte) (*Config, error) {
	file, err := parseFile(data)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Output: generator.DefaultOutput,
	}

	if file.Output != "" {
		c.Output = file.Output
	}

	if err := c.registerRenderer(file); err != nil {
		return nil, err
	}

	if err := c.registerCompleter(file); err != nil {
		return nil, err
	}

	if err := c.registerSearcher(file); err != nil {
		return nil, err
	}

	return c, nil
}

// Close releases caches held by the configured providers.
func (cfg *Config) Close() {
	for _, fn := range cfg.closers {
		fn()
	}

	cfg.closers = nil
}

type configFile struct {
	Output string `yaml:"output"`

	Renderer  *providerConfig `yaml:"renderer"`
	Completer *providerConfig `yaml:"completer"`

	Searcher *searcherConfig `yaml:"searcher"`
}

func parseFile(data []byte) (*configFile, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
