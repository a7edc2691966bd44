package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dububu/mediatools/pkg/provider"
)

// FileName derives an image file name from the first 50 runes of prompt;
// every non-alphanumeric rune becomes an underscore.
func FileName(prompt, timestamp string, index int) string {
	runes := []rune(prompt)

	if len(runes) > 50 {
		runes = runes[:50]
	}

	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return '_'
	}, string(runes))

	return fmt.Sprintf("%s_%s_%d.png", name, timestamp, index)
}

func (g *Generator) save(ctx context.Context, image provider.Image, prompt string, index int) (string, error) {
	path := filepath.Join(g.output, FileName(prompt, g.now().Format("20060102_150405"), index))

	if len(image.Content) > 0 {
		if err := os.WriteFile(path, image.Content, 0644); err != nil {
			return "", err
		}

		slog.InfoContext(ctx, "saved image", "path", path)
		return path, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", image.URL, nil)

	if err != nil {
		return "", err
	}

	resp, err := g.client.Do(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed: %s", resp.Status)
	}

	f, err := os.Create(path)

	if err != nil {
		return "", err
	}

	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(path)

		return "", err
	}

	slog.InfoContext(ctx, "saved image", "path", path)
	return path, nil
}
