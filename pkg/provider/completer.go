package provider

import (
	"context"
)

type Completer interface {
	Complete(ctx context.Context, input string, options *CompleteOptions) (*Completion, error)
}

type CompleteOptions struct {
	Instructions string

	MaxTokens   *int
	Temperature *float32
}

type Completion struct {
	ID    string
	Model string

	Text string

	Usage *Usage
}
