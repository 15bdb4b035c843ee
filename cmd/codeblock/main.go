package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codeblock"
	"github.com/iw2rmb/codeblock/block"
)

type options struct {
	In       string
	Out      string
	Lang     string
	Style    string
	Export   string
	ReadOnly bool
	HTML     bool
	LineNums bool
	Version  bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "codeblock: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fset := flag.NewFlagSet("codeblock", flag.ContinueOnError)
	fset.SetOutput(stderr)

	fset.StringVar(&opts.In, "in", "", "Block JSON file to load (missing file starts empty)")
	fset.StringVar(&opts.Out, "out", "", "File to save to (default: -in)")
	fset.StringVar(&opts.Lang, "lang", "", "Language for syntax highlighting")
	fset.StringVar(&opts.Style, "style", "monokai", "Highlighting style")
	fset.StringVar(&opts.Export, "export", "", "Export format instead of editing (html)")
	fset.BoolVar(&opts.ReadOnly, "readonly", false, "Open the block read-only")
	fset.BoolVar(&opts.HTML, "html", false, "Treat -in as pasted HTML and take its first <pre>")
	fset.BoolVar(&opts.LineNums, "n", true, "Show line numbers")
	fset.BoolVar(&opts.Version, "version", false, "Show version information")

	fset.Usage = func() {
		fmt.Fprintf(stderr, "Usage: codeblock [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fset.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  codeblock -in block.json -lang go     Edit a block\n")
		fmt.Fprintf(stderr, "  codeblock -in page.html -html -out block.json\n")
		fmt.Fprintf(stderr, "  codeblock -in block.json -export html  Print highlighted HTML\n")
	}

	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	if opts.Out == "" && !opts.HTML {
		opts.Out = opts.In
	}
	switch opts.Export {
	case "", "html":
	default:
		return options{}, fmt.Errorf("unknown export format %q", opts.Export)
	}
	return opts, nil
}

func run(opts options, stdout io.Writer) error {
	if opts.Version {
		fmt.Fprintf(stdout, "codeblock %s\n", codeblock.Tag())
		return nil
	}

	if path := os.Getenv("CODEBLOCK_LOG"); path != "" {
		f, err := tea.LogToFile(path, "codeblock")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	tool, err := loadTool(opts)
	if err != nil {
		return err
	}

	if opts.Export == "html" {
		return block.RenderHTML(stdout, tool.Data(), opts.Lang)
	}

	p := tea.NewProgram(newModel(tool, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func loadTool(opts options) (*block.Tool, error) {
	params := block.Params{ReadOnly: opts.ReadOnly}
	if opts.In == "" {
		return block.New(params), nil
	}

	raw, err := os.ReadFile(opts.In)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("%s does not exist, starting empty", opts.In)
		return block.New(params), nil
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", opts.In, err)
	}

	if !opts.HTML {
		params.Data = block.ParseData(raw)
		return block.New(params), nil
	}

	ev, err := block.PasteEventFromHTML(string(raw))
	if err != nil {
		return nil, fmt.Errorf("paste %s: %w", opts.In, err)
	}
	tool := block.New(params)
	tool.OnPaste(ev)
	return tool, nil
}
