package google

import (
	"context"
	"errors"

	"github.com/dububu/mediatools/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config: cfg,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, input string, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	client, err := c.newClient(ctx)

	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{}

	if options.Instructions != "" {
		config.SystemInstruction = genai.NewContentFromText(options.Instructions, genai.RoleUser)
	}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	if options.Temperature != nil {
		config.Temperature = options.Temperature
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(input), config)

	if err != nil {
		return nil, err
	}

	text := resp.Text()

	if text == "" {
		return nil, errors.New("empty response")
	}

	result := &provider.Completion{
		ID:    uuid.NewString(),
		Model: c.model,

		Text: text,
	}

	if resp.UsageMetadata != nil {
		result.Usage = &provider.Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	return result, nil
}
