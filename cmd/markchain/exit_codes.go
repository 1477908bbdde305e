package main

import (
	"errors"
	"os"

	markchain "github.com/alnah/go-markchain"
	"github.com/alnah/go-markchain/internal/config"
	"github.com/alnah/go-markchain/internal/fileutil"
)

// Exit codes for markchain CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or chain
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrFileTooLarge) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/chain errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrChainSyntax) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, markchain.ErrEmptyChain) ||
		errors.Is(err, markchain.ErrUnknownStep) ||
		errors.Is(err, markchain.ErrUnknownTag) ||
		errors.Is(err, markchain.ErrInvalidLanguage) {
		return ExitUsage
	}

	return ExitGeneral
}
