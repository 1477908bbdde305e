package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// A first argument that is not a command runs render.
func runMain(args []string, env *Environment) int {
	cmd, rest := "render", args[1:]
	if len(rest) > 0 && isCommand(rest[0]) {
		cmd, rest = rest[0], rest[1:]
	}

	switch cmd {
	case "render":
		return runRenderCmd(rest, env)
	case "tags":
		printTags(env.Stdout)
		return ExitSuccess
	case "version":
		fmt.Fprintf(env.Stdout, "markchain %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(rest, env)
	}
	return ExitUsage
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	switch arg {
	case "render", "tags", "version", "help":
		return true
	}
	return false
}

// setupProcess configures GOMAXPROCS, logging what it does only in verbose mode.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setupProcess(logger *slog.Logger, verbose bool) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			logger.Debug(fmt.Sprintf(format, args...))
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// newLogger returns a text logger on w at debug level when verbose, or a
// logger that discards everything.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
