package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/wippyai/fastjson/format"
	"github.com/wippyai/fastjson/parser"
	"github.com/wippyai/fastjson/stream"
	"github.com/wippyai/fastjson/value"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Input file (default stdin)")
		outFile     = flag.String("out", "", "Output file (default stdout)")
		indent      = flag.Int("indent", 0, "Spaces per nesting level (0 = compact)")
		sortKeys    = flag.Bool("sort", false, "Render object keys in sorted order")
		ascii       = flag.Bool("ascii", false, "Escape non-ASCII characters")
		validate    = flag.Bool("validate", false, "Parse input and report errors, no output")
		maxDepth    = flag.Int("max-depth", parser.DefaultMaxDepth, "Nesting limit")
		interactive = flag.Bool("i", false, "Interactive tree viewer")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*inFile, *maxDepth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := format.Config{Indent: *indent, SortKeys: *sortKeys, ASCIIOnly: *ascii}
	if err := run(*inFile, *outFile, cfg, *maxDepth, *validate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, outFile string, cfg format.Config, maxDepth int, validateOnly bool) error {
	v, err := decodeInput(inFile, maxDepth)
	if err != nil {
		return err
	}

	if validateOnly {
		name := inFile
		if name == "" {
			name = "stdin"
		}
		fmt.Printf("%s: valid JSON (%s at top level)\n", name, v.Kind())
		return nil
	}

	out := io.Writer(os.Stdout)
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := stream.Encode(v, out, cfg); err != nil {
		return err
	}
	if cfg.Indent > 0 || outFile == "" {
		fmt.Fprintln(out)
	}
	return nil
}

func decodeInput(path string, maxDepth int) (value.Value, error) {
	in := io.Reader(os.Stdin)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return value.Value{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	return stream.DecodeWith(in, maxDepth)
}
