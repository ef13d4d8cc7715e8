// Package config loads regex2dfa settings from a YAML file and the
// environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"sigs.k8s.io/yaml"
)

// Environment variables that override the file.
const (
	EnvInput     = "REGEX2DFA_INPUT"
	EnvOutput    = "REGEX2DFA_OUTPUT"
	EnvLogLevel  = "REGEX2DFA_LOG_LEVEL"
	EnvLogFormat = "REGEX2DFA_LOG_FORMAT"
	EnvMaxStates = "REGEX2DFA_MAX_STATES"
)

type Config struct {
	// Input is the file holding the regular expression.
	Input string `json:"input"`
	// Output receives the transition table.
	Output string `json:"output"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel"`
	// LogFormat is text or json.
	LogFormat string `json:"logFormat"`
	// MaxStates caps DFA states during determinisation; 0 disables the cap.
	MaxStates int `json:"maxStates"`
}

func Default() Config {
	return Config{
		Input:     "regex.txt",
		Output:    "automaton_output.txt",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads path over the defaults. An empty path skips the file. The
// environment is applied last.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ApplyEnv overrides fields from REGEX2DFA_* variables that are set.
func (c *Config) ApplyEnv() error {
	c.Input = getEnv(EnvInput, c.Input)
	c.Output = getEnv(EnvOutput, c.Output)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	c.LogFormat = getEnv(EnvLogFormat, c.LogFormat)
	if v := os.Getenv(EnvMaxStates); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxStates, err)
		}
		c.MaxStates = n
	}
	return nil
}

func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("config: input file is required")
	}
	if c.Output == "" {
		return fmt.Errorf("config: output file is required")
	}
	if _, ok := parseLogLevel(c.LogLevel); !ok {
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	if c.MaxStates < 0 {
		return fmt.Errorf("config: maxStates must not be negative, got %d", c.MaxStates)
	}
	return nil
}

func parseLogLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NewLogger builds the logger described by c, writing to w.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLogLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
