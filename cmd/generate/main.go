package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/dububu/mediatools/config"
	"github.com/dububu/mediatools/pkg/generator"
	"github.com/dububu/mediatools/pkg/otel"
	"github.com/dububu/mediatools/pkg/provider"
)

const defaultPrompt = "cute scene with characters"

func main() {
	var (
		typeFlag      string
		promptFlag    string
		styleFlag     string
		characterFlag string
		countFlag     int
	)

	flag.StringVar(&typeFlag, "type", string(generator.TaskCustom), "type of image to generate")
	flag.StringVar(&typeFlag, "t", string(generator.TaskCustom), "shorthand for -type")
	flag.StringVar(&promptFlag, "prompt", "", "custom prompt for generation")
	flag.StringVar(&promptFlag, "p", "", "shorthand for -prompt")
	flag.StringVar(&styleFlag, "style", generator.DefaultStyle, "style preset")
	flag.StringVar(&styleFlag, "s", generator.DefaultStyle, "shorthand for -style")
	flag.StringVar(&characterFlag, "character", generator.DefaultCharacter, "character to feature")
	flag.StringVar(&characterFlag, "c", generator.DefaultCharacter, "shorthand for -character")
	flag.IntVar(&countFlag, "count", 1, "number of images")
	flag.IntVar(&countFlag, "n", 1, "shorthand for -count")

	sizeFlag := flag.String("size", string(provider.DefaultRenderSize), "image size")
	productTypeFlag := flag.String("product-type", "", "product type for mockup")
	themeFlag := flag.String("theme", "", "theme for social/banner/email")
	platformFlag := flag.String("platform", generator.DefaultPlatform, "social platform")
	configFlag := flag.String("config", config.DefaultPath, "config file")

	flag.Parse()

	taskType := generator.TaskType(typeFlag)

	if !slices.Contains(generator.TaskTypes, taskType) {
		fail(fmt.Errorf("invalid type %q", typeFlag))
	}

	if _, ok := generator.Styles[styleFlag]; !ok {
		fail(fmt.Errorf("invalid style %q (choose from %s)", styleFlag, strings.Join(generator.StyleNames(), ", ")))
	}

	if _, ok := generator.Characters[characterFlag]; !ok {
		fail(fmt.Errorf("invalid character %q (choose from %s)", characterFlag, strings.Join(generator.CharacterNames(), ", ")))
	}

	size, err := provider.ParseSize(*sizeFlag)

	if err != nil {
		fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "mediatools-generate", "")

	if err != nil {
		fail(err)
	}

	defer shutdown(context.Background())

	cfg, err := config.Load(*configFlag)

	if err != nil {
		fail(err)
	}

	defer cfg.Close()

	renderer, err := cfg.Renderer()

	if errors.Is(err, generator.ErrMissingCredential) {
		fail(errors.New("REPLICATE_API_TOKEN not found in environment"))
	}

	if err != nil {
		fail(err)
	}

	g, err := generator.New(renderer,
		generator.WithOutput(cfg.Output),
		generator.WithClient(otel.NewClient(nil)),
	)

	if err != nil {
		fail(err)
	}

	task := generator.Task{
		Type: taskType,

		ProductType: *productTypeFlag,
		Description: promptFlag,

		Theme:    *themeFlag,
		Platform: *platformFlag,
		Headline: promptFlag,

		Pattern: styleFlag,
	}

	// preset types need their key, otherwise a custom image is generated
	switch {
	case taskType == generator.TaskProduct && *productTypeFlag != "":
	case taskType == generator.TaskSocial && *themeFlag != "":
	case taskType == generator.TaskBanner && *themeFlag != "":
	case taskType == generator.TaskEmail && *themeFlag != "":
	case taskType == generator.TaskPattern:

	default:
		if promptFlag == "" {
			promptFlag = defaultPrompt
		}

		task = generator.Task{
			Type: generator.TaskCustom,

			Request: generator.Request{
				Prompt: promptFlag,

				Style:     styleFlag,
				Character: characterFlag,

				Size:  size,
				Count: countFlag,

				Save: true,
			},
		}
	}

	results := g.Run(ctx, task)

	fmt.Println()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("GENERATION COMPLETE")
	fmt.Println(strings.Repeat("=", 50))

	for _, result := range results {
		local := result.LocalPath

		if local == "" {
			local = "Not saved"
		}

		fmt.Println("URL:", result.URL)
		fmt.Println("Local:", local)
		fmt.Println()
	}
}

func fail(err error) {
	slog.Error("generate failed", "error", err)
	os.Exit(1)
}
