package provider

import (
	"context"
)

type Renderer interface {
	Render(ctx context.Context, input string, options *RenderOptions) (*Rendering, error)
}

type RenderOptions struct {
	Size  Size
	Count int

	DisableSafetyChecker bool
}

type Rendering struct {
	ID    string
	Model string

	Images []Image
}

// Image is a single generated picture. Remote backends fill URL, inline
// backends fill Content; some fill both.
type Image struct {
	URL string

	Width  int
	Height int

	Content     []byte
	ContentType string
}
