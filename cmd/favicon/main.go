package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dububu/mediatools/pkg/favicon"
)

func main() {
	rootFlag := flag.String("root", ".", "site root the icons are written below")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [source-image]\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "without a source image the first of %s is used\n\n", strings.Join(favicon.DefaultCandidates, ", "))
		flag.PrintDefaults()
	}

	flag.Parse()

	source, err := favicon.FindSource(flag.Arg(0), favicon.DefaultCandidates...)

	if err != nil {
		fmt.Fprintln(os.Stderr, "No source image found. Please provide an image path.")
		flag.Usage()
		os.Exit(1)
	}

	fmt.Println("Using source:", source)

	img, err := favicon.Open(source)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	paths, err := favicon.Convert(img, *rootFlag)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Favicon files created successfully!")

	for _, path := range paths {
		fmt.Println("   -", path)
	}
}
