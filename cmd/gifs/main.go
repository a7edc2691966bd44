package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/dububu/mediatools/config"
	"github.com/dububu/mediatools/pkg/gif"
	"github.com/dububu/mediatools/pkg/otel"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath, "config file")
	limitFlag := flag.Int("limit", 5, "number of results")
	outputFlag := flag.String("output", "", "output file or directory")

	flag.Usage = func() {
		out := flag.CommandLine.Output()

		fmt.Fprintf(out, "usage: %s [flags] [command] [args]\n\n", os.Args[0])
		fmt.Fprintln(out, "commands:")
		fmt.Fprintln(out, "  category <name>     bubu dudu gifs of a category (default: love)")
		fmt.Fprintln(out, "  search <query...>   free text search")
		fmt.Fprintln(out, "  catalog             write the per-category catalog")
		fmt.Fprintln(out, "  presets [category]  list fallback urls")
		fmt.Fprintln(out, "  download <url>      download a gif")
		fmt.Fprintln(out)
		flag.PrintDefaults()
	}

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "mediatools-gifs", "")

	if err != nil {
		fail(err)
	}

	defer shutdown(context.Background())

	cfg, err := config.Load(*configFlag)

	if err != nil {
		fail(err)
	}

	defer cfg.Close()

	f := gif.New(cfg.Searcher(), gif.WithClient(otel.NewClient(nil)))

	args := flag.Args()
	command := ""

	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	switch command {
	case "":
		if !f.Online() {
			fmt.Println("Using preset GIFs (no API key):")
			printPresets("")

			return
		}

		printGIFs(f.BubuDudu(ctx, "love", *limitFlag))

	case "category":
		category := "love"

		if len(args) > 0 {
			category = args[0]
		}

		printGIFs(f.BubuDudu(ctx, category, *limitFlag))

	case "search":
		printGIFs(f.Search(ctx, strings.Join(args, " "), *limitFlag))

	case "catalog":
		path := *outputFlag

		if path == "" {
			path = "gif_catalog.json"
		}

		if err := gif.WriteCatalog(path, f.Catalog(ctx)); err != nil {
			fail(err)
		}

		fmt.Println("Catalog saved to", path)

	case "presets":
		category := ""

		if len(args) > 0 {
			category = args[0]
		}

		printPresets(category)

	case "download":
		if len(args) == 0 {
			flag.Usage()
			os.Exit(1)
		}

		url := args[0]
		path := *outputFlag

		if path == "" {
			path = filepath.Join("gifs", filepath.Base(url))
		}

		if !f.Download(ctx, url, path) {
			os.Exit(1)
		}

		fmt.Println("Saved", path)

	default:
		flag.Usage()
		os.Exit(1)
	}
}

func printGIFs(gifs []gif.GIF) {
	for _, g := range gifs {
		fmt.Println("Title:", g.Title)
		fmt.Println("URL:", g.GIF)
		fmt.Println("---")
	}
}

func printPresets(category string) {
	categories := make([]string, 0, len(gif.Presets))

	for name := range gif.Presets {
		if category == "" || category == name {
			categories = append(categories, name)
		}
	}

	slices.Sort(categories)

	if len(categories) == 0 {
		fmt.Println(gif.RandomPreset(category))
		return
	}

	for _, name := range categories {
		fmt.Printf("\n%s:\n", strings.ToUpper(name))

		for _, url := range gif.Presets[name] {
			fmt.Println("  " + url)
		}
	}
}

func fail(err error) {
	slog.Error("gifs failed", "error", err)
	os.Exit(1)
}
