package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dububu/mediatools/config"
	"github.com/dububu/mediatools/pkg/copywriter"
	"github.com/dububu/mediatools/pkg/generator"
	"github.com/dububu/mediatools/pkg/otel"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath, "config file")

	flag.Usage = func() {
		out := flag.CommandLine.Output()

		fmt.Fprintf(out, "usage: %s [flags] describe <name> <price> <category>\n", os.Args[0])
		fmt.Fprintf(out, "       %s [flags] <prompt...>\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	args := flag.Args()

	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "mediatools-describe", "")

	if err != nil {
		fail(err)
	}

	defer shutdown(context.Background())

	cfg, err := config.Load(*configFlag)

	if err != nil {
		fail(err)
	}

	defer cfg.Close()

	completer, err := cfg.Completer()

	if errors.Is(err, generator.ErrMissingCredential) {
		fail(errors.New("GEMINI_API_KEY not found in environment"))
	}

	if err != nil {
		fail(err)
	}

	w, err := copywriter.New(completer)

	if err != nil {
		fail(err)
	}

	var text string

	if args[0] == "describe" {
		product := copywriter.Product{}

		if len(args) > 1 {
			product.Name = args[1]
		}

		if len(args) > 2 {
			product.Price = args[2]
		}

		if len(args) > 3 {
			product.Category = args[3]
		}

		text, err = w.ProductDescription(ctx, product)
	} else {
		text, err = w.Content(ctx, strings.Join(args, " "))
	}

	if err != nil {
		fail(err)
	}

	fmt.Println(text)
}

func fail(err error) {
	slog.Error("describe failed", "error", err)
	os.Exit(1)
}
