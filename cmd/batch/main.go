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
	"syscall"
	"time"

	"github.com/dububu/mediatools/config"
	"github.com/dububu/mediatools/pkg/batch"
	"github.com/dububu/mediatools/pkg/generator"
	"github.com/dububu/mediatools/pkg/otel"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath, "config file")
	outputFlag := flag.String("output", ".", "directory for the catalog file")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "mediatools-batch", "")

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

	fmt.Println("DuBuBu.com launch media generator")

	catalog := batch.Run(ctx, g, batch.LaunchJobs(), time.Now())

	path, err := catalog.Write(*outputFlag)

	if err != nil {
		fail(err)
	}

	counts := catalog.Counts()
	categories := make([]string, 0, len(counts))

	for category := range counts {
		categories = append(categories, category)
	}

	slices.Sort(categories)

	fmt.Println()
	fmt.Println("Generation complete!")

	for _, category := range categories {
		fmt.Printf("  %-8s %d\n", category, counts[category])
	}

	fmt.Println("Total images:", len(catalog.Images))
	fmt.Println("Catalog saved:", path)
}

func fail(err error) {
	slog.Error("batch failed", "error", err)
	os.Exit(1)
}
