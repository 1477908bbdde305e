package main

import (
	"fmt"
	"io"

	markchain "github.com/alnah/go-markchain"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: markchain [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Run a handler chain over text (default)")
	fmt.Fprintln(w, "  tags       List supported tags")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'markchain help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: markchain render [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run a handler chain over text and print the result.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Text file, or - for stdin (optional)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -t, --text <s>            Input text")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --highlights          Render ==text== as <mark>text</mark>")
	fmt.Fprintln(w, "      --print-config        Print the effective config and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Chain:")
	fmt.Fprintln(w, "      --chain <list>        Comma-separated steps, outermost first:")
	fmt.Fprintln(w, "                            upper[:lang], lower[:lang], break[:marker],")
	fmt.Fprintln(w, "                            indent[:prefix|tab], tab-indent, markdown,")
	fmt.Fprintln(w, "                            tag:<name>[:flat]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log chain details to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input precedence: input argument, --text, piped stdin, built-in demo.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  markchain")
	fmt.Fprintln(w, "  markchain notes.txt --chain \"lower,tag:p\"")
	fmt.Fprintln(w, "  echo 'a ==b==' | markchain --highlights --chain \"tag:p:flat\"")
	fmt.Fprintln(w, "  markchain README.md --chain \"markdown,tag:body\" -o out.html")
}

// printTags lists the tags a tag step accepts, one per line.
func printTags(w io.Writer) {
	for _, t := range markchain.Tags() {
		fmt.Fprintf(w, "%-8s %s ... %s\n", t, t.Open(), t.Close())
	}
}

// runHelp prints help for the named command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "tags":
		fmt.Fprintln(env.Stdout, "Usage: markchain tags")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List the tags accepted by tag steps.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: markchain version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
