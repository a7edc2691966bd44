package otel

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dububu/mediatools/pkg/provider"

	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	err error
}

func (r *stubRenderer) Render(ctx context.Context, input string, options *provider.RenderOptions) (*provider.Rendering, error) {
	if r.err != nil {
		return nil, r.err
	}

	return &provider.Rendering{
		Model:  "flux-schnell",
		Images: []provider.Image{{URL: "https://example.com/a.png"}},
	}, nil
}

func TestSetupDisabled(t *testing.T) {
	EnableTelemetry = false

	shutdown, err := Setup(context.Background(), "mediatools", "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestNewClientDisabled(t *testing.T) {
	EnableTelemetry = false

	client := &http.Client{}
	require.Same(t, client, NewClient(client))
	require.Same(t, http.DefaultClient, NewClient(nil))
}

func TestRendererDelegates(t *testing.T) {
	r := NewRenderer("replicate", "flux-schnell", &stubRenderer{})

	result, err := r.Render(context.Background(), "a bear", nil)
	require.NoError(t, err)
	require.Len(t, result.Images, 1)

	r = NewRenderer("replicate", "flux-schnell", &stubRenderer{err: errors.New("quota")})

	_, err = r.Render(context.Background(), "a bear", nil)
	require.EqualError(t, err, "quota")
}
