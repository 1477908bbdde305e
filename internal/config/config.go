package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-markchain/internal/fileutil"
	"github.com/alnah/go-markchain/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Limits for config values.
const (
	MaxChainSteps      = 64      // Nesting deeper than this is a mistake
	MaxKindLength      = 20      // "tab-indent"
	MaxTagLength       = 20      // "header"
	MaxPrefixLength    = 32      // Indent prefix
	MaxMarkerLength    = 32      // "<br/>"
	MaxLanguageLength  = 35      // BCP 47 tags are short in practice
	DefaultMaxInput    = 1 << 20 // 1MB of input text
	MaxInputLimitBytes = 1 << 30 // Upper bound for input.maxBytes
)

// configDirName is the directory under os.UserConfigDir() searched for named configs.
const configDirName = "go-markchain"

// Config holds all configuration for a markchain run.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Chain  []StepConfig `yaml:"chain"`
}

// InputConfig defines input preprocessing options.
type InputConfig struct {
	Highlights bool  `yaml:"highlights"` // ==text== -> <mark>text</mark>
	MaxBytes   int64 `yaml:"maxBytes"`   // 0 = DefaultMaxInput
}

// OutputConfig defines output options.
type OutputConfig struct {
	TrailingNewline bool `yaml:"trailingNewline"` // End output with "\n"
}

// StepConfig describes one handler. Fields that do not apply to Kind are ignored.
type StepConfig struct {
	Kind     string `yaml:"kind"`
	Tag      string `yaml:"tag,omitempty"`      // tag
	Indent   *bool  `yaml:"indent,omitempty"`   // tag: nil = true
	Prefix   string `yaml:"prefix,omitempty"`   // indent
	Marker   string `yaml:"marker,omitempty"`   // break
	Language string `yaml:"language,omitempty"` // upper, lower
}

// WantsIndent reports whether a tag step adds its own indent level.
func (s StepConfig) WantsIndent() bool {
	return s.Indent == nil || *s.Indent
}

// Validate checks limits and required fields. Whether a kind or tag is
// known is left to the chain builder, which owns those lists.
func (c *Config) Validate() error {
	if c.Input.MaxBytes < 0 || c.Input.MaxBytes > MaxInputLimitBytes {
		return fmt.Errorf("%w: input.maxBytes must be between 0 and %d, got %d", ErrInvalidValue, MaxInputLimitBytes, c.Input.MaxBytes)
	}

	if len(c.Chain) > MaxChainSteps {
		return fmt.Errorf("%w: chain has %d steps (max %d)", ErrInvalidValue, len(c.Chain), MaxChainSteps)
	}

	for i, step := range c.Chain {
		field := func(name string) string { return fmt.Sprintf("chain[%d].%s", i, name) }

		if strings.TrimSpace(step.Kind) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidValue, field("kind"))
		}
		if err := validateFieldLength(field("kind"), step.Kind, MaxKindLength); err != nil {
			return err
		}
		if err := validateFieldLength(field("tag"), step.Tag, MaxTagLength); err != nil {
			return err
		}
		if err := validateFieldLength(field("prefix"), step.Prefix, MaxPrefixLength); err != nil {
			return err
		}
		if err := validateFieldLength(field("marker"), step.Marker, MaxMarkerLength); err != nil {
			return err
		}
		if err := validateFieldLength(field("language"), step.Language, MaxLanguageLength); err != nil {
			return err
		}
		// A line break would split the letter differently than the chain expects.
		if strings.ContainsAny(step.Prefix, "\r\n") {
			return fmt.Errorf("%w: %s cannot contain line breaks", ErrInvalidValue, field("prefix"))
		}
		if strings.ContainsAny(step.Marker, "\r\n") {
			return fmt.Errorf("%w: %s cannot contain line breaks", ErrInvalidValue, field("marker"))
		}
	}

	return nil
}

// MaxInput returns the effective input size limit.
func (c *Config) MaxInput() int64 {
	if c.Input.MaxBytes == 0 {
		return DefaultMaxInput
	}
	return c.Input.MaxBytes
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with no chain, no highlights and a
// trailing newline on output.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Highlights: false, MaxBytes: 0},
		Output: OutputConfig{TrailingNewline: true},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := fileutil.ReadFileLimited(configPath, int64(yamlutil.MaxInputSize))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists, in order, the files LoadConfig tries for a config name.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
