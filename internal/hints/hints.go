// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-markchain/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains go-markchain) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-markchain") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnknownTag lists the tags a tag step accepts.
func ForUnknownTag(available []string) string {
	return forChoices("tags", available)
}

// ForUnknownStep lists the step kinds a chain accepts.
func ForUnknownStep(available []string) string {
	return forChoices("steps", available)
}

// ForChainSyntax shows the --chain flag format.
func ForChainSyntax() string {
	return format(`--chain "upper,break,tag:html,tag:body" (tag:p:flat skips indent, indent:<prefix>, upper:<lang>)`)
}

// ForOutputFile returns hints for output write errors.
func ForOutputFile() string {
	return format("check the output directory exists and is writable")
}

func forChoices(label string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format(label + ": " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
