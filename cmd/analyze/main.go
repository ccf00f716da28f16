package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	wasmcapture "github.com/wippyai/wasm-capture"
	"github.com/wippyai/wasm-capture/extract"
	"github.com/wippyai/wasm-capture/inspect"
	"github.com/wippyai/wasm-capture/report"
)

func main() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	var (
		extractKiwi = fs.Bool("extract-kiwi", false, "extract raw Kiwi payloads instead of printing the report")
		outDir      = fs.String("out", extract.DefaultDir, "output directory for extracted samples")
		wasmFile    = fs.String("wasm", "", "module binary to cross-reference against the capture")
		interactive = fs.Bool("i", false, "browse the report interactively")
		verbose     = fs.Bool("v", false, "verbose logging to stderr")
	)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: analyze <capture.json> [-wasm module.wasm] [-i] [-v]")
		fmt.Fprintln(os.Stderr, "       analyze <capture.json> --extract-kiwi [-out dir]")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		os.Exit(1)
	}
	capturePath := rest[0]
	fs.Parse(rest[1:]) // flags may follow the capture path

	if *verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		logger, err := cfg.Build()
		if err != nil {
			fatal(err)
		}
		wasmcapture.SetLogger(logger)
		defer logger.Sync()
	}

	doc, err := wasmcapture.Load(capturePath)
	if err != nil {
		fatal(err)
	}

	switch {
	case *extractKiwi:
		err = extract.KiwiSamples(doc, *outDir, os.Stdout)
	case *interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fatal(fmt.Errorf("interactive mode requires a terminal"))
		}
		var sections []report.Section
		sections, err = buildSections(doc, *wasmFile)
		if err == nil {
			err = browse(capturePath, sections)
		}
	default:
		var sections []report.Section
		sections, err = buildSections(doc, *wasmFile)
		if err == nil {
			err = report.Render(os.Stdout, sections)
		}
	}
	if err != nil {
		fatal(err)
	}
}

// buildSections produces the report, with the module cross-reference
// appended when a binary was given.
func buildSections(doc *wasmcapture.Document, wasmFile string) ([]report.Section, error) {
	sections := report.Summarize(doc)
	if wasmFile == "" {
		return sections, nil
	}
	info, err := inspect.Module(context.Background(), wasmFile)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", wasmFile, err)
	}
	return append(sections, inspect.CrossReference(info, doc)), nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
