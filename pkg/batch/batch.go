package batch

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dububu/mediatools/pkg/generator"
)

// Runner executes a single generation task.
type Runner interface {
	Run(ctx context.Context, task generator.Task) []generator.Result
}

type Catalog struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Images      []generator.Result `json:"images"`
}

// Run executes jobs sequentially and tags every result with its job's
// category. Failed jobs contribute no images.
func Run(ctx context.Context, r Runner, jobs []Job, now time.Time) *Catalog {
	catalog := &Catalog{
		GeneratedAt: now,
		Images:      []generator.Result{},
	}

	for i, job := range jobs {
		slog.InfoContext(ctx, "processing job", "job", i+1, "total", len(jobs), "category", job.Category, "subcategory", job.Subcategory)

		results := r.Run(ctx, job.Task)

		if len(results) == 0 {
			slog.WarnContext(ctx, "job produced no images", "category", job.Category, "subcategory", job.Subcategory)
		}

		for _, result := range results {
			result.Category = job.Category
			result.Subcategory = job.Subcategory
			result.Theme = job.Theme

			catalog.Images = append(catalog.Images, result)
		}
	}

	return catalog
}

func FileName(t time.Time) string {
	return "media_catalog_" + t.Format("20060102_150405") + ".json"
}

// Write stores the catalog as indented JSON in dir and returns its path.
func (c *Catalog) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(c, "", "  ")

	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(c.GeneratedAt))

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}

// Counts returns the number of images per category.
func (c *Catalog) Counts() map[string]int {
	counts := make(map[string]int)

	for _, image := range c.Images {
		counts[image.Category]++
	}

	return counts
}
