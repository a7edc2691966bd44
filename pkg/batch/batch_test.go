package batch_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dububu/mediatools/pkg/batch"
	"github.com/dububu/mediatools/pkg/generator"
	"github.com/dububu/mediatools/pkg/provider"

	"github.com/stretchr/testify/require"
)

// countRenderer returns one image per call, two for mugs, and fails for
// email headers.
type countRenderer struct{}

func (countRenderer) Render(ctx context.Context, input string, options *provider.RenderOptions) (*provider.Rendering, error) {
	if strings.Contains(input, "email header") {
		return nil, errors.New("rate limited")
	}

	images := []provider.Image{{URL: "https://cdn.example.com/a.png", Width: 1024, Height: 1024, Content: []byte("png")}}

	if strings.Contains(input, "coffee mug") {
		images = append(images, images[0])
	}

	return &provider.Rendering{Images: images}, nil
}

var testTime = time.Date(2026, 1, 20, 18, 4, 0, 0, time.UTC)

func TestLaunchJobs(t *testing.T) {
	jobs := batch.LaunchJobs()
	require.Len(t, jobs, 23)

	counts := map[string]int{}

	for _, job := range jobs {
		counts[job.Category]++
	}

	require.Equal(t, map[string]int{"banner": 4, "product": 8, "social": 6, "email": 5}, counts)
}

func TestRun(t *testing.T) {
	g, err := generator.New(countRenderer{}, generator.WithOutput(t.TempDir()))
	require.NoError(t, err)

	catalog := batch.Run(context.Background(), g, batch.LaunchJobs(), testTime)

	// 4 banners + 8 products (mug twice) + 6 social + 0 email
	require.Len(t, catalog.Images, 19)
	require.Equal(t, map[string]int{"banner": 4, "product": 9, "social": 6}, catalog.Counts())

	first := catalog.Images[0]
	require.Equal(t, "banner", first.Category)
	require.Equal(t, "hero", first.Subcategory)
	require.Empty(t, first.Theme)

	for _, image := range catalog.Images {
		if image.Category == "social" {
			require.NotEmpty(t, image.Theme)
		}
	}
}

type stubRunner map[generator.TaskType]int

func (s stubRunner) Run(ctx context.Context, task generator.Task) []generator.Result {
	return make([]generator.Result, s[task.Type])
}

func TestRunCountsMatchTasks(t *testing.T) {
	runner := stubRunner{
		generator.TaskBanner:  3,
		generator.TaskProduct: 1,
		generator.TaskSocial:  0,
		generator.TaskEmail:   2,
	}

	jobs := batch.LaunchJobs()
	catalog := batch.Run(context.Background(), runner, jobs, testTime)

	expected := 0

	for _, job := range jobs {
		expected += runner[job.Task.Type]
	}

	require.Len(t, catalog.Images, expected)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	catalog := batch.Run(context.Background(), stubRunner{generator.TaskEmail: 1}, batch.LaunchJobs(), testTime)

	path, err := catalog.Write(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "media_catalog_20260120_180400.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		GeneratedAt string           `json:"generated_at"`
		Images      []map[string]any `json:"images"`
	}

	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, "2026-01-20T18:04:00Z", doc.GeneratedAt)
	require.Len(t, doc.Images, 5)
	require.Equal(t, "email", doc.Images[0]["category"])
	require.Equal(t, "welcome", doc.Images[0]["subcategory"])
}

func TestWriteEmpty(t *testing.T) {
	catalog := batch.Run(context.Background(), stubRunner{}, batch.LaunchJobs(), testTime)

	path, err := catalog.Write(t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"images": []`)
}
