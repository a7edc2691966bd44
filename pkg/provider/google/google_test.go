package google_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dububu/mediatools/pkg/provider"
	"github.com/dububu/mediatools/pkg/provider/google"

	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, calls *atomic.Int64, part map[string]any) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}

		calls.Add(1)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"role":  "model",
						"parts": []map[string]any{part},
					},
				},
			},
			"usageMetadata": map[string]any{
				"promptTokenCount":     12,
				"candidatesTokenCount": 34,
			},
		})
	}))

	t.Cleanup(server.Close)

	return server
}

func TestComplete(t *testing.T) {
	var calls atomic.Int64

	server := newServer(t, &calls, map[string]any{"text": "Snuggle up with Bubu."})

	c, err := google.NewCompleter("", google.WithURL(server.URL), google.WithToken("test"))
	require.NoError(t, err)

	result, err := c.Complete(context.Background(), "describe a plush", nil)
	require.NoError(t, err)

	require.Equal(t, "Snuggle up with Bubu.", result.Text)
	require.Equal(t, "gemini-2.5-flash", result.Model)
	require.Equal(t, 12, result.Usage.InputTokens)
	require.Equal(t, 34, result.Usage.OutputTokens)
	require.EqualValues(t, 1, calls.Load())
}

func TestRender(t *testing.T) {
	var calls atomic.Int64

	server := newServer(t, &calls, map[string]any{
		"inlineData": map[string]any{
			"mimeType": "image/png",
			"data":     base64.StdEncoding.EncodeToString([]byte("png-bytes")),
		},
	})

	r, err := google.NewRenderer("", google.WithURL(server.URL), google.WithToken("test"))
	require.NoError(t, err)

	result, err := r.Render(context.Background(), "a cozy bear", &provider.RenderOptions{
		Size:  provider.SizeLandscape43,
		Count: 2,
	})

	require.NoError(t, err)
	require.Len(t, result.Images, 2)
	require.EqualValues(t, 2, calls.Load())

	require.Equal(t, []byte("png-bytes"), result.Images[0].Content)
	require.Equal(t, "image/png", result.Images[0].ContentType)
	require.Equal(t, 1024, result.Images[0].Width)
	require.Equal(t, 768, result.Images[0].Height)
}
