package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/dirtree/internal/util"
)

// CLI verbosity values accepted by [ConfigOverride.LogLvl]
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.InfoLevel

	// DefaultAutoCreateParents keeps the strict policy: every ancestor of a
	// created path must already exist
	DefaultAutoCreateParents = false

	// DefaultListIndent is the number of spaces per depth level in listings
	DefaultListIndent = 2

	DefaultEchoCommands = false

	DefaultStopOnError = false

	// DefaultCommentPrefix marks command file lines that are skipped
	DefaultCommentPrefix = "#"
)

// Config contains runtime configuration values for the interpreter.
type Config struct {
	LogLvl            util.LogLevel // Internal log level (Default info)
	AutoCreateParents bool          // CREATE makes missing ancestors like `mkdir -p` (Default false)
	ListIndent        int           // Spaces of indent per listing depth level (Default 2)
	EchoCommands      bool          // Print each command before its output (Default false)
	StopOnError       bool          // Abort the run on the first failed command (Default false)
	CommentPrefix     string        // Lines starting with this are skipped; "" disables (Default "#")
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is a CLI style verbosity between 1 (error) and 5 (trace); values
	// outside the range are clamped
	LogLvl            *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	AutoCreateParents *bool   `yaml:"auto_create_parents,omitempty" json:"auto_create_parents,omitempty"`
	ListIndent        *int    `yaml:"list_indent,omitempty" json:"list_indent,omitempty"`
	EchoCommands      *bool   `yaml:"echo_commands,omitempty" json:"echo_commands,omitempty"`
	StopOnError       *bool   `yaml:"stop_on_error,omitempty" json:"stop_on_error,omitempty"`
	CommentPrefix     *string `yaml:"comment_prefix,omitempty" json:"comment_prefix,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:            DefaultLogLvl,
		AutoCreateParents: DefaultAutoCreateParents,
		ListIndent:        DefaultListIndent,
		EchoCommands:      DefaultEchoCommands,
		StopOnError:       DefaultStopOnError,
		CommentPrefix:     DefaultCommentPrefix,
	}
}

// NewConfig creates a Config from defaults with override applied.
// A nil override returns the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLevel(*override.LogLvl)
	}
	if override.ListIndent != nil && *override.ListIndent >= 0 {
		c.ListIndent = *override.ListIndent
	}
	c.AutoCreateParents = util.ValueOrDefault(override.AutoCreateParents, c.AutoCreateParents)
	c.EchoCommands = util.ValueOrDefault(override.EchoCommands, c.EchoCommands)
	c.StopOnError = util.ValueOrDefault(override.StopOnError, c.StopOnError)
	c.CommentPrefix = util.ValueOrDefault(override.CommentPrefix, c.CommentPrefix)
}

// VerboseToLogLevel maps a CLI verbosity (1 error .. 5 trace) to a
// [util.LogLevel], clamping out of range values.
func VerboseToLogLevel(verbose int) util.LogLevel {
	verbose = max(ErrorVerbose, min(verbose, TraceVerbose))
	lvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return lvls[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
