package flux

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dububu/mediatools/pkg/provider"
	"github.com/dububu/mediatools/pkg/provider/replicate"

	"github.com/google/uuid"
)

var _ provider.Renderer = (*Renderer)(nil)

type Renderer struct {
	*replicate.Client

	model string
}

const (
	FluxSchnell string = "black-forest-labs/flux-schnell"
	FluxDev     string = "black-forest-labs/flux-dev"
	FluxPro     string = "black-forest-labs/flux-pro"

	FluxPro11      string = "black-forest-labs/flux-1.1-pro"
	FluxProUltra11 string = "black-forest-labs/flux-1.1-pro-ultra"
)

var SupportedModels = []string{
	FluxPro,
	FluxDev,
	FluxSchnell,

	FluxPro11,
	FluxProUltra11,
}

// flux-schnell and flux-dev accept at most four outputs per prediction
const maxOutputs = 4

func NewRenderer(model string, options ...replicate.Option) (*Renderer, error) {
	if model == "" {
		model = FluxSchnell
	}

	if !slices.Contains(SupportedModels, model) {
		return nil, errors.New("unsupported model: " + model)
	}

	client, err := replicate.New(model, options...)

	if err != nil {
		return nil, err
	}

	return &Renderer{
		Client: client,

		model: model,
	}, nil
}

func (r *Renderer) Render(ctx context.Context, prompt string, options *provider.RenderOptions) (*provider.Rendering, error) {
	if options == nil {
		options = new(provider.RenderOptions)
	}

	input, err := convertInput(r.model, prompt, options)

	if err != nil {
		return nil, err
	}

	output, err := r.Run(ctx, input)

	if err != nil {
		return nil, err
	}

	urls, err := convertOutput(output)

	if err != nil {
		return nil, err
	}

	width, height := options.Size.Dimensions()

	result := &provider.Rendering{
		ID:    uuid.NewString(),
		Model: r.model,
	}

	for _, u := range urls {
		result.Images = append(result.Images, provider.Image{
			URL: u,

			Width:  width,
			Height: height,

			ContentType: "image/png",
		})
	}

	return result, nil
}

func convertInput(model, prompt string, options *provider.RenderOptions) (replicate.PredictionInput, error) {
	count := max(options.Count, 1)

	switch model {
	case FluxSchnell, FluxDev:
		// https://replicate.com/black-forest-labs/flux-schnell/api/schema#input-schema
		// https://replicate.com/black-forest-labs/flux-dev/api/schema#input-schema
		if count > maxOutputs {
			return nil, fmt.Errorf("at most %d images per request", maxOutputs)
		}

		input := map[string]any{
			"prompt": prompt,

			"num_outputs":   count,
			"aspect_ratio":  options.Size.AspectRatio(),
			"output_format": "png",

			"disable_safety_checker": options.DisableSafetyChecker,
		}

		return input, nil

	case FluxPro, FluxPro11, FluxProUltra11:
		// https://replicate.com/black-forest-labs/flux-pro/api/schema#input-schema
		// https://replicate.com/black-forest-labs/flux-1.1-pro/api/schema#input-schema
		// https://replicate.com/black-forest-labs/flux-1.1-pro-ultra/api/schema#input-schema
		if count > 1 {
			return nil, errors.New("only one image per request is supported")
		}

		tolerance := 2

		if options.DisableSafetyChecker {
			tolerance = 6
		}

		input := map[string]any{
			"prompt": prompt,

			"aspect_ratio":  options.Size.AspectRatio(),
			"output_format": "png",

			"safety_tolerance": tolerance,
		}

		return input, nil
	}

	return nil, errors.New("unsupported model: " + model)
}

func convertOutput(output replicate.PredictionOutput) ([]string, error) {
	switch v := output.(type) {
	case string:
		return []string{v}, nil

	case []string:
		return v, nil

	case []any:
		var result []string

		for _, item := range v {
			s, ok := item.(string)

			if !ok {
				return nil, fmt.Errorf("unsupported output item: %T", item)
			}

			result = append(result, s)
		}

		return result, nil
	}

	return nil, fmt.Errorf("unsupported output: %T", output)
}
