package copywriter

import (
	"context"
	"errors"
	"strings"
	"text/template"

	"github.com/dububu/mediatools/pkg/provider"
)

var productTemplate = template.Must(template.New("product").Parse(`Write a compelling e-commerce product description for DuBuBu.com:

Product: {{ .Name }}
Price: {{ .Price }}
Category: {{ .Category }}

Requirements:
- 150-200 words
- Warm, cute, romantic tone
- Include 4 bullet point features
- End with call-to-action
- Target audience: couples, gift buyers
`))

type Product struct {
	Name     string
	Price    string
	Category string
}

func ProductPrompt(p Product) (string, error) {
	var sb strings.Builder

	if err := productTemplate.Execute(&sb, p); err != nil {
		return "", err
	}

	return sb.String(), nil
}

type Writer struct {
	completer provider.Completer
}

func New(completer provider.Completer) (*Writer, error) {
	if completer == nil {
		return nil, errors.New("completer required")
	}

	return &Writer{
		completer: completer,
	}, nil
}

// Content sends prompt as is and returns the generated text.
func (w *Writer) Content(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)

	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	completion, err := w.completer.Complete(ctx, prompt, nil)

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(completion.Text), nil
}

func (w *Writer) ProductDescription(ctx context.Context, p Product) (string, error) {
	prompt, err := ProductPrompt(p)

	if err != nil {
		return "", err
	}

	return w.Content(ctx, prompt)
}
