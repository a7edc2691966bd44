package otel

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewClient returns client with an instrumented transport. Without
// telemetry the client is returned unchanged.
func NewClient(client *http.Client) *http.Client {
	if client == nil {
		client = http.DefaultClient
	}

	if !EnableTelemetry {
		return client
	}

	transport := client.Transport

	if transport == nil {
		transport = http.DefaultTransport
	}

	return &http.Client{
		Transport: otelhttp.NewTransport(transport),

		Timeout:       client.Timeout,
		Jar:           client.Jar,
		CheckRedirect: client.CheckRedirect,
	}
}
