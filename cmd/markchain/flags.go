package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common      commonFlags
	chain       string
	text        string
	output      string
	highlights  bool
	printConfig bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log chain details to stderr")
}

// newRenderFlagSet builds the render FlagSet bound to f.
func newRenderFlagSet(f *renderFlags, errOut io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() { printRenderUsage(errOut) }

	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.chain, "chain", "", `chain steps, e.g. "upper,break,tag:html,tag:body"`)
	fs.StringVarP(&f.text, "text", "t", "", "input text (instead of a file or stdin)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&f.highlights, "highlights", false, "render ==text== as <mark>text</mark>")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config as YAML and exit")
	return fs
}

// parseRenderFlags parses args and returns the positional arguments.
func parseRenderFlags(args []string, errOut io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newRenderFlagSet(f, errOut)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
