package config

import (
	"net/http"
	"net/url"

	"github.com/dububu/mediatools/pkg/otel"
)

type proxyConfig struct {
	URL string `yaml:"url"`
}

func (cfg *proxyConfig) proxyTransport() (*http.Transport, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, nil
	}

	proxyURL, err := url.Parse(cfg.URL)

	if err != nil {
		return nil, err
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.Proxy = http.ProxyURL(proxyURL)

	return tr, nil
}

// httpClient returns the client a provider talks through: proxied when a
// proxy is configured, instrumented when telemetry is enabled.
func (cfg *proxyConfig) httpClient() (*http.Client, error) {
	transport, err := cfg.proxyTransport()

	if err != nil {
		return nil, err
	}

	client := &http.Client{}

	if transport != nil {
		client.Transport = transport
	}

	return otel.NewClient(client), nil
}
