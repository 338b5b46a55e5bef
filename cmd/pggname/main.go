// Command pggname computes the stable name of a pangenome graph stored as
// GFA and prints it to stdout.
//
// Usage:
//
//	pggname [options] graph.gfa
//
// By default the name is the SHA-256 digest of the graph's canonical byte
// stream. The -hash and -length flags select another SHA-2 variant or a
// truncated digest; -benchmark prints graph statistics and times every
// variant; -emit-header additionally prints the name as GFA or GAF header
// lines.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pangenome/pggname"
	"github.com/pangenome/pggname/digest"
	"github.com/pangenome/pggname/gfa"
	"github.com/pangenome/pggname/nametag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pggname:", err)
		os.Exit(1)
	}
}

func run() error {
	hashName := flag.String("hash", "sha256", "hash variant: sha224, sha256, sha384, sha512, sha512/224, sha512/256")
	length := flag.Int("length", 0, "truncated digest length in bytes (0 = natural length)")
	configPath := flag.String("config", "", "YAML configuration file")
	workers := flag.Int("workers", 0, "sort worker goroutines (0 = all CPUs)")
	benchmark := flag.Bool("benchmark", false, "print graph statistics and time every hash variant")
	emitHeader := flag.String("emit-header", "", "also print name header lines: gfa or gaf")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] graph.gfa\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one input file")
	}
	if *emitHeader != "" && *emitHeader != "gfa" && *emitHeader != "gaf" {
		return fmt.Errorf("unknown header format %q (want gfa or gaf)", *emitHeader)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Flags left at their defaults must not shadow the config file, so only
	// explicitly set flags become options.
	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	opts := []pggname.Option{pggname.WithLogger(logger)}
	if *configPath != "" {
		opts = append(opts, pggname.WithConfigFile(*configPath))
	}
	if explicit["hash"] {
		variant, err := digest.ParseVariant(*hashName)
		if err != nil {
			return err
		}
		opts = append(opts, pggname.WithHashVariant(variant))
	}
	if explicit["length"] {
		opts = append(opts, pggname.WithTruncation(*length))
	}
	if explicit["workers"] {
		opts = append(opts, pggname.WithWorkers(*workers))
	}

	namer, err := pggname.NewNamer(opts...)
	if err != nil {
		return err
	}

	parsed, err := gfa.ParseFile(flag.Arg(0))
	if err != nil {
		return err
	}

	ctx := context.Background()
	if *benchmark {
		return runBenchmark(ctx, namer, parsed)
	}

	name, err := namer.Name(ctx, parsed.Graph)
	if err != nil {
		return err
	}
	fmt.Println(name)

	switch *emitHeader {
	case "gfa":
		for _, line := range nametag.New(name).GFAHeaderLines() {
			fmt.Println(line)
		}
	case "gaf":
		for _, line := range nametag.New(name).GAFHeaderLines() {
			fmt.Println(line)
		}
	}
	return nil
}

func runBenchmark(ctx context.Context, namer *pggname.Namer, parsed *gfa.File) error {
	start := time.Now()
	view, err := namer.Canonicalize(ctx, parsed.Graph)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Canonicalized the graph in %.3f seconds\n\n", time.Since(start).Seconds())

	nodes, edges, seqLen := view.Statistics()
	fmt.Fprintln(os.Stderr, "Graph statistics:")
	fmt.Fprintf(os.Stderr, "  Nodes:    %d\n", nodes)
	fmt.Fprintf(os.Stderr, "  Edges:    %d\n", edges)
	fmt.Fprintf(os.Stderr, "  Sequence: %d bp\n", seqLen)
	fmt.Fprintln(os.Stderr)

	for _, variant := range digest.Variants() {
		start := time.Now()
		name, err := namer.NameViewAs(ctx, view, variant, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", variantLabel(variant), name)
		fmt.Fprintf(os.Stderr, "Used %.3f seconds\n\n", time.Since(start).Seconds())
	}
	return nil
}

func variantLabel(v digest.Variant) string {
	return strings.Replace(strings.ToUpper(string(v)), "SHA", "SHA-", 1)
}
