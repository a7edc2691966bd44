package otel

import (
	"context"

	"github.com/dububu/mediatools/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type Completer interface {
	Observable
	provider.Completer
}

type observableCompleter struct {
	model    string
	provider string

	completer provider.Completer
}

func NewCompleter(provider, model string, p provider.Completer) Completer {
	return &observableCompleter{
		completer: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableCompleter) otelSetup() {
}

func (p *observableCompleter) Complete(ctx context.Context, input string, options *provider.CompleteOptions) (*provider.Completion, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "chat "+p.model)
	defer span.End()

	result, err := p.completer.Complete(ctx, input, options)

	if EnableDebug {
		span.SetAttributes(attribute.String("input", input))

		if result != nil {
			span.SetAttributes(attribute.String("output", result.Text))
		}
	}

	if result != nil && result.Usage != nil {
		span.SetAttributes(
			attribute.Int("gen_ai.usage.input_tokens", result.Usage.InputTokens),
			attribute.Int("gen_ai.usage.output_tokens", result.Usage.OutputTokens),
		)
	}

	return result, err
}
