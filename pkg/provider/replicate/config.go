package replicate

import (
	"net/http"
	"strings"

	"github.com/replicate/replicate-go"
)

type Config struct {
	url string

	token string
	model string

	client *http.Client
}

type Option func(*Config)

func WithURL(url string) Option {
	return func(c *Config) {
		c.url = url
	}
}

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

func (c *Config) Options() []replicate.ClientOption {
	if c.client == nil {
		c.client = http.DefaultClient
	}

	options := []replicate.ClientOption{
		replicate.WithHTTPClient(c.client),
	}

	if c.url != "" {
		options = append(options, replicate.WithBaseURL(strings.TrimRight(c.url, "/")))
	}

	if c.token != "" {
		options = append(options, replicate.WithToken(c.token))
	}

	return options
}
