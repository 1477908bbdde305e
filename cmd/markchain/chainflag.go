package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-markchain/internal/config"
)

// ErrChainSyntax indicates a malformed --chain value.
var ErrChainSyntax = errors.New("invalid --chain syntax")

// parseChainFlag turns "upper,break,tag:html,tag:p:flat" into step configs.
//
// Each comma-separated item is kind[:arg[:modifier]]:
//   - tag:<name>[:flat]   flat skips the tag's own indent level
//   - indent:<prefix>     custom prefix; a literal "tab" means "\t"
//   - break:<marker>      custom marker
//   - upper:<lang>, lower:<lang>
//
// Kind and tag names are checked later by markchain.BuildChain.
func parseChainFlag(value string) ([]config.StepConfig, error) {
	if strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("%w: empty chain", ErrChainSyntax)
	}

	items := strings.Split(value, ",")
	steps := make([]config.StepConfig, 0, len(items))

	for i, item := range items {
		parts := strings.Split(strings.TrimSpace(item), ":")
		kind := strings.ToLower(parts[0])
		if kind == "" {
			return nil, fmt.Errorf("%w: item %d is empty", ErrChainSyntax, i+1)
		}

		step := config.StepConfig{Kind: kind}
		args := parts[1:]

		switch kind {
		case "tag":
			if len(args) == 0 || args[0] == "" {
				return nil, fmt.Errorf("%w: item %d: tag needs a name (tag:html)", ErrChainSyntax, i+1)
			}
			step.Tag = args[0]
			if len(args) > 1 {
				if args[1] != "flat" || len(args) > 2 {
					return nil, fmt.Errorf("%w: item %d: unknown tag modifier %q", ErrChainSyntax, i+1, strings.Join(args[1:], ":"))
				}
				flat := false
				step.Indent = &flat
			}
		case "indent":
			if len(args) > 0 {
				// Rejoin so a prefix may itself contain ':'.
				step.Prefix = strings.Join(args, ":")
				if step.Prefix == "tab" {
					step.Kind, step.Prefix = "tab-indent", ""
				}
			}
		case "break":
			if len(args) > 0 {
				step.Marker = strings.Join(args, ":")
			}
		case "upper", "lower":
			if len(args) > 1 {
				return nil, fmt.Errorf("%w: item %d: %s takes one language", ErrChainSyntax, i+1, kind)
			}
			if len(args) == 1 {
				step.Language = args[0]
			}
		default:
			if len(args) > 0 {
				return nil, fmt.Errorf("%w: item %d: %s takes no arguments", ErrChainSyntax, i+1, kind)
			}
		}

		steps = append(steps, step)
	}

	return steps, nil
}
