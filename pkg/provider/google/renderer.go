package google

import (
	"context"
	"errors"

	"github.com/dububu/mediatools/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Renderer = (*Renderer)(nil)

type Renderer struct {
	*Config
}

func NewRenderer(model string, options ...Option) (*Renderer, error) {
	if model == "" {
		model = "gemini-2.5-flash-image"
	}

	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Renderer{
		Config: cfg,
	}, nil
}

// Render issues one request per image; the API answers with a single
// inline image per candidate.
func (r *Renderer) Render(ctx context.Context, input string, options *provider.RenderOptions) (*provider.Rendering, error) {
	if options == nil {
		options = new(provider.RenderOptions)
	}

	client, err := r.newClient(ctx)

	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},

		ImageConfig: &genai.ImageConfig{
			AspectRatio: options.Size.AspectRatio(),
		},
	}

	width, height := options.Size.Dimensions()

	result := &provider.Rendering{
		ID:    uuid.NewString(),
		Model: r.model,
	}

	for range max(options.Count, 1) {
		resp, err := client.Models.GenerateContent(ctx, r.model, genai.Text(input), config)

		if err != nil {
			return nil, err
		}

		image, err := convertImage(resp)

		if err != nil {
			return nil, err
		}

		image.Width = width
		image.Height = height

		result.Images = append(result.Images, *image)
	}

	return result, nil
}

func convertImage(resp *genai.GenerateContentResponse) (*provider.Image, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("empty response")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData == nil {
			continue
		}

		return &provider.Image{
			Content:     part.InlineData.Data,
			ContentType: part.InlineData.MIMEType,
		}, nil
	}

	return nil, errors.New("no image in response")
}
