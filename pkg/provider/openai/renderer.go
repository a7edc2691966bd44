package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/dububu/mediatools/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Renderer = (*Renderer)(nil)

type Renderer struct {
	*Config
	images openai.ImageService
}

var dataURLPattern = regexp.MustCompile(`data:([a-zA-Z]+\/[a-zA-Z0-9.+_-]+);base64,\s*(.+)`)

func NewRenderer(url, model string, options ...Option) (*Renderer, error) {
	if model == "" {
		model = "gpt-image-1"
	}

	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Renderer{
		Config: cfg,
		images: openai.NewImageService(cfg.Options()...),
	}, nil
}

func (r *Renderer) Render(ctx context.Context, input string, options *provider.RenderOptions) (*provider.Rendering, error) {
	if options == nil {
		options = new(provider.RenderOptions)
	}

	size := convertSize(options.Size)

	params := openai.ImageGenerateParams{
		Model:  openai.ImageModel(r.model),
		Prompt: input,

		N:    openai.Int(int64(max(options.Count, 1))),
		Size: openai.ImageGenerateParamsSize(size),
	}

	resp, err := r.images.Generate(ctx, params)

	if err != nil {
		return nil, convertError(err)
	}

	width, height := parseSize(size)

	result := &provider.Rendering{
		ID:    uuid.NewString(),
		Model: r.model,
	}

	for _, image := range resp.Data {
		img, err := convertImage(image)

		if err != nil {
			return nil, err
		}

		img.Width = width
		img.Height = height

		result.Images = append(result.Images, *img)
	}

	return result, nil
}

func convertImage(image openai.Image) (*provider.Image, error) {
	if image.URL != "" {
		if strings.HasPrefix(image.URL, "data:") {
			match := dataURLPattern.FindStringSubmatch(image.URL)

			if len(match) != 3 {
				return nil, errors.New("invalid data url")
			}

			data, err := base64.StdEncoding.DecodeString(match[2])

			if err != nil {
				return nil, err
			}

			return &provider.Image{
				Content:     data,
				ContentType: match[1],
			}, nil
		}

		return &provider.Image{
			URL:         image.URL,
			ContentType: "image/png",
		}, nil
	}

	if image.B64JSON != "" {
		data, err := base64.StdEncoding.DecodeString(image.B64JSON)

		if err != nil {
			return nil, err
		}

		return &provider.Image{
			Content:     data,
			ContentType: "image/png",
		}, nil
	}

	return nil, errors.New("invalid image data")
}

// https://platform.openai.com/docs/api-reference/images/create#images-create-size
func convertSize(s provider.Size) string {
	switch s {
	case provider.SizePortrait43:
		return "1024x1536"

	case provider.SizeLandscape43, provider.SizeLandscape169:
		return "1536x1024"
	}

	return "1024x1024"
}

func parseSize(val string) (int, int) {
	w, h, ok := strings.Cut(val, "x")

	if !ok {
		return 0, 0
	}

	width, _ := strconv.Atoi(w)
	height, _ := strconv.Atoi(h)

	return width, height
}
