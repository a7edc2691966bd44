package favicon

import (
	"errors"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	ico "github.com/biessek/golang-ico"
	"github.com/disintegration/imaging"
)

var ErrSourceNotFound = errors.New("source image not found")

// Sizes are the square resolutions bundled into favicon.ico.
var Sizes = []int{16, 32, 48, 64, 128, 256}

const AppleTouchSize = 180

var DefaultCandidates = []string{
	"dububu-logo.png",
	"logo.png",
	"favicon-source.png",
	"icon.png",
}

// FindSource returns path when given, otherwise the first existing
// candidate.
func FindSource(path string, candidates ...string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", ErrSourceNotFound
		}

		return path, nil
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}

	return "", ErrSourceNotFound
}

// Open decodes path into an RGBA image with non-premultiplied alpha.
func Open(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)

	if err != nil {
		return nil, err
	}

	return imaging.Clone(img), nil
}

// Thumbnail fits img into a size x size box without upscaling, keeping its
// aspect ratio, and centers it on a transparent canvas of exactly that size.
func Thumbnail(img image.Image, size int) *image.NRGBA {
	thumb := imaging.Fit(img, size, size, imaging.Lanczos)

	canvas := imaging.New(size, size, color.NRGBA{})

	bounds := thumb.Bounds()
	offset := image.Pt((size-bounds.Dx())/2, (size-bounds.Dy())/2)

	return imaging.Paste(canvas, thumb, offset)
}

func Icons(img image.Image, sizes ...int) []*image.NRGBA {
	if len(sizes) == 0 {
		sizes = Sizes
	}

	icons := make([]*image.NRGBA, 0, len(sizes))

	for _, size := range sizes {
		icons = append(icons, Thumbnail(img, size))
	}

	return icons
}

type Format string

const (
	FormatICO Format = "ico"
	FormatPNG Format = "png"
)

type Output struct {
	Path   string
	Format Format
	Sizes  []int
}

// Outputs lists the files written by Convert, relative to the site root.
var Outputs = []Output{
	{Path: "public/favicon.ico", Format: FormatICO, Sizes: Sizes},
	{Path: "public/apple-touch-icon.png", Format: FormatPNG, Sizes: []int{AppleTouchSize}},
	{Path: "public/favicon-32x32.png", Format: FormatPNG, Sizes: []int{32}},
	{Path: "public/favicon-16x16.png", Format: FormatPNG, Sizes: []int{16}},
	{Path: "app/favicon.ico", Format: FormatICO, Sizes: []int{32}},
}

// Convert renders every output below root and returns the written paths.
func Convert(img image.Image, root string, outputs ...Output) ([]string, error) {
	if len(outputs) == 0 {
		outputs = Outputs
	}

	var paths []string

	for _, o := range outputs {
		path := filepath.Join(root, o.Path)

		if err := write(img, path, o); err != nil {
			return paths, err
		}

		slog.Info("wrote icon", "path", path, "sizes", o.Sizes)
		paths = append(paths, path)
	}

	return paths, nil
}

func write(img image.Image, path string, o Output) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	icons := Icons(img, o.Sizes...)

	switch o.Format {
	case FormatPNG:
		if len(icons) != 1 {
			return errors.New("png output takes exactly one size")
		}

		return imaging.Save(icons[0], path)

	case FormatICO:
		f, err := os.Create(path)

		if err != nil {
			return err
		}

		defer f.Close()

		if len(icons) == 1 {
			if err := ico.Encode(f, icons[0]); err != nil {
				return err
			}

			return f.Close()
		}

		images := make([]image.Image, 0, len(icons))

		for _, icon := range icons {
			images = append(images, icon)
		}

		if err := EncodeICO(f, images...); err != nil {
			return err
		}

		return f.Close()
	}

	return errors.New("unsupported format: " + string(o.Format))
}
