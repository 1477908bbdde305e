package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	markchain "github.com/alnah/go-markchain"
	"github.com/alnah/go-markchain/internal/config"
	"github.com/alnah/go-markchain/internal/fileutil"
	"github.com/alnah/go-markchain/internal/hints"
	"github.com/alnah/go-markchain/internal/yamlutil"
	flag "github.com/spf13/pflag"
)

// Sentinel errors for the render command.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)

// stdinArg names standard input as the positional argument.
const stdinArg = "-"

// demoText is rendered when no input is given.
const demoText = "Object Recursion\nThis is a concept came up in 1998"

// demoChain is used when neither --chain nor a config chain is given.
func demoChain() []config.StepConfig {
	return []config.StepConfig{
		{Kind: "upper"},
		{Kind: "break"},
		{Kind: "tag", Tag: "html"},
		{Kind: "tag", Tag: "body"},
	}
}

// outputPerm is the mode of files written with --output.
const outputPerm = 0o644

// runRenderCmd parses render flags, runs the chain and returns the exit code.
func runRenderCmd(args []string, env *Environment) int {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	logger := newLogger(env.Stderr, flags.common.verbose)
	setupProcess(logger, flags.common.verbose)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runRender(ctx, positional, flags, logger, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, flags))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runRender resolves config, input and chain, then writes the result.
func runRender(ctx context.Context, positional []string, flags *renderFlags, logger *slog.Logger, env *Environment) error {
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", ErrUsage, len(positional))
	}
	if len(positional) == 1 && flags.text != "" {
		return fmt.Errorf("%w: --text and an input file are mutually exclusive", ErrUsage)
	}

	cfg, err := loadRenderConfig(flags)
	if err != nil {
		return err
	}

	if flags.printConfig {
		return printConfig(env.Stdout, cfg)
	}

	text, err := readInput(positional, flags, cfg, env)
	if err != nil {
		return err
	}

	chain, err := markchain.BuildChain(toSteps(cfg.Chain)...)
	if err != nil {
		return err
	}

	opts := []markchain.Option{markchain.WithLogger(logger)}
	if cfg.Input.Highlights {
		opts = append(opts, markchain.WithHighlights())
	}

	out, err := markchain.NewProcessor(opts...).Process(ctx, markchain.Input{Text: text, Chain: chain})
	if err != nil {
		return err
	}
	if cfg.Output.TrailingNewline {
		out += "\n"
	}

	if err := writeOutput(out, flags.output, env); err != nil {
		return err
	}

	if flags.output != "" && !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "wrote %s (%d lines)\n", flags.output, lines(out))
	}
	return nil
}

// loadRenderConfig loads --config when set and applies flag overrides.
// Without a chain from either source, the demo chain is used.
func loadRenderConfig(flags *renderFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.chain != "" {
		steps, err := parseChainFlag(flags.chain)
		if err != nil {
			return nil, err
		}
		cfg.Chain = steps
	}
	if flags.highlights {
		cfg.Input.Highlights = true
	}
	if len(cfg.Chain) == 0 {
		cfg.Chain = demoChain()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// toSteps maps config steps to chain steps.
func toSteps(chain []config.StepConfig) []markchain.Step {
	steps := make([]markchain.Step, 0, len(chain))
	for _, s := range chain {
		steps = append(steps, markchain.Step{
			Kind:     markchain.StepKind(s.Kind),
			Tag:      s.Tag,
			NoIndent: !s.WantsIndent(),
			Prefix:   s.Prefix,
			Marker:   s.Marker,
			Language: s.Language,
		})
	}
	return steps
}

// readInput returns the text to render, in order of precedence: input file
// (or "-" for stdin), --text, piped stdin, demo text.
func readInput(positional []string, flags *renderFlags, cfg *config.Config, env *Environment) (string, error) {
	limit := cfg.MaxInput()

	if len(positional) == 1 {
		path := positional[0]
		if path == stdinArg {
			return readStdin(env, limit)
		}
		data, err := fileutil.ReadFileLimited(path, limit)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrReadInput, path, err)
		}
		return string(data), nil
	}

	if flags.text != "" {
		if int64(len(flags.text)) > limit {
			return "", fmt.Errorf("%w: --text: %w", ErrReadInput, fileutil.ErrFileTooLarge)
		}
		return flags.text, nil
	}

	if env.StdinIsPipe != nil && env.StdinIsPipe() {
		return readStdin(env, limit)
	}

	return demoText, nil
}

func readStdin(env *Environment, limit int64) (string, error) {
	data, err := fileutil.ReadLimited(env.Stdin, limit)
	if err != nil {
		return "", fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
	}
	return string(data), nil
}

// writeOutput writes to path atomically, or to stdout when path is empty.
func writeOutput(out, path string, env *Environment) error {
	if path == "" {
		if _, err := io.WriteString(env.Stdout, out); err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
		}
		return nil
	}
	if err := fileutil.WriteFileAtomic(path, out, outputPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// printConfig writes the effective config as YAML.
func printConfig(w io.Writer, cfg *config.Config) error {
	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
	}
	return nil
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, flags *renderFlags) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(flags.common.config))
	case errors.Is(err, markchain.ErrUnknownTag):
		return hints.ForUnknownTag(tagNames())
	case errors.Is(err, markchain.ErrUnknownStep):
		return hints.ForUnknownStep(stepNames())
	case errors.Is(err, ErrChainSyntax):
		return hints.ForChainSyntax()
	case errors.Is(err, ErrWriteOutput) && flags.output != "":
		return hints.ForOutputFile()
	}
	return ""
}

func tagNames() []string {
	tags := markchain.Tags()
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}
	return names
}

func stepNames() []string {
	kinds := markchain.StepKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// lines counts the lines of s, ignoring a trailing newline.
func lines(s string) int {
	return strings.Count(strings.TrimSuffix(s, "\n"), "\n") + 1
}
