package provider

import (
	"errors"
	"strings"
)

type Size string

const (
	SizeSquareHD     Size = "square_hd"
	SizePortrait43   Size = "portrait_4_3"
	SizeLandscape43  Size = "landscape_4_3"
	SizeLandscape169 Size = "landscape_16_9"
)

const DefaultRenderSize = SizeSquareHD

var Sizes = []Size{
	SizeSquareHD,
	SizePortrait43,
	SizeLandscape43,
	SizeLandscape169,
}

func ParseSize(val string) (Size, error) {
	if val == "" {
		return DefaultRenderSize, nil
	}

	s := Size(strings.ToLower(strings.TrimSpace(val)))

	for _, size := range Sizes {
		if size == s {
			return size, nil
		}
	}

	return "", errors.New("invalid size: " + val)
}

// Dimensions returns the nominal pixel size of s. Unknown sizes report the
// square default.
func (s Size) Dimensions() (width, height int) {
	switch s {
	case SizePortrait43:
		return 768, 1024

	case SizeLandscape43:
		return 1024, 768

	case SizeLandscape169:
		return 1024, 576
	}

	return 1024, 1024
}

// AspectRatio returns s as a "w:h" ratio string.
func (s Size) AspectRatio() string {
	switch s {
	case SizePortrait43:
		return "3:4"

	case SizeLandscape43:
		return "4:3"

	case SizeLandscape169:
		return "16:9"
	}

	return "1:1"
}
