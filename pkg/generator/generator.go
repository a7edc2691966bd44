package generator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dububu/mediatools/pkg/provider"
)

const DefaultOutput = "generated_images"

// ErrMissingCredential is returned when no credential is configured for a
// remote service.
var ErrMissingCredential = errors.New("missing api credential")

type Generator struct {
	renderer provider.Renderer

	client *http.Client
	output string

	now func() time.Time
}

type Option func(*Generator)

func WithClient(client *http.Client) Option {
	return func(g *Generator) {
		g.client = client
	}
}

// WithOutput sets the directory downloaded images are written to.
func WithOutput(dir string) Option {
	return func(g *Generator) {
		g.output = dir
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func New(renderer provider.Renderer, options ...Option) (*Generator, error) {
	if renderer == nil {
		return nil, ErrMissingCredential
	}

	g := &Generator{
		renderer: renderer,

		client: http.DefaultClient,
		output: DefaultOutput,

		now: time.Now,
	}

	for _, option := range options {
		option(g)
	}

	if err := os.MkdirAll(g.output, 0755); err != nil {
		return nil, err
	}

	return g, nil
}

type Request struct {
	Prompt string

	Style     string
	Character string

	Size  provider.Size
	Count int

	// Save downloads every image into the output directory.
	Save bool
}

type Result struct {
	URL string `json:"url"`

	Width  int `json:"width"`
	Height int `json:"height"`

	Prompt    string    `json:"prompt"`
	Timestamp time.Time `json:"timestamp"`

	LocalPath string `json:"local_path,omitempty"`

	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Theme       string `json:"theme,omitempty"`
}

// Generate renders req and returns one Result per image. Failures are
// logged and yield an empty list.
func (g *Generator) Generate(ctx context.Context, req Request) []Result {
	if req.Style == "" {
		req.Style = DefaultStyle
	}

	if req.Character == "" {
		req.Character = DefaultCharacter
	}

	if req.Size == "" {
		req.Size = provider.DefaultRenderSize
	}

	if req.Count <= 0 {
		req.Count = 1
	}

	prompt := BuildPrompt(req.Prompt, req.Style, req.Character)

	slog.InfoContext(ctx, "generating image", "prompt", prompt, "size", req.Size, "count", req.Count)

	rendering, err := g.renderer.Render(ctx, prompt, &provider.RenderOptions{
		Size:  req.Size,
		Count: req.Count,
	})

	if err != nil {
		slog.ErrorContext(ctx, "error generating image", "error", err)
		return []Result{}
	}

	results := make([]Result, 0, len(rendering.Images))

	for i, image := range rendering.Images {
		result := Result{
			URL: image.URL,

			Width:  image.Width,
			Height: image.Height,

			Prompt:    prompt,
			Timestamp: g.now(),
		}

		if req.Save && (image.URL != "" || len(image.Content) > 0) {
			path, err := g.save(ctx, image, req.Prompt, i)

			if err != nil {
				slog.WarnContext(ctx, "error saving image", "url", image.URL, "error", err)
			} else {
				result.LocalPath = path
			}
		}

		results = append(results, result)
	}

	return results
}
