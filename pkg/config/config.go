// Package config loads the optional overlay.yaml that tunes a Context and
// its logging.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/overlay/pkg/errors"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "overlay.yaml"

// SupportedMajor is the only schema major version this package reads.
const SupportedMajor = "v1"

// Config represents the optional overlay.yaml configuration.
type Config struct {
	// Version is the schema version, e.g. "v1" or "v1.2.0". Empty means the
	// current version.
	Version string        `yaml:"version,omitempty"`
	App     AppConfig     `yaml:"app"`
	Context ContextConfig `yaml:"context"`
	Logging LoggingConfig `yaml:"logging"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// ContextConfig mirrors overlay.Options.
type ContextConfig struct {
	StartDrawOrder   int    `yaml:"start_draw_order,omitempty"`
	DefaultCursor    string `yaml:"default_cursor,omitempty"`
	BlurOnEmptyPress bool   `yaml:"blur_on_empty_press,omitempty"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	// Level is a slog level name: debug, info, warn or error. Default info.
	Level string `yaml:"level,omitempty"`
	// Format is "text" or "json". Default text.
	Format string `yaml:"format,omitempty"`
}

// LoadOptional reads overlay.yaml from dir if present. A missing file yields
// the defaults.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, configError(fmt.Errorf("failed to read %s: %w", FileName, err))
	}
	return Parse(data)
}

// Parse decodes and validates a configuration document. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, configError(fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field that is converted later.
func (c *Config) Validate() error {
	if _, err := c.version(); err != nil {
		return configError(err)
	}
	if _, err := graphics.ParseCursorIcon(c.Context.DefaultCursor); err != nil {
		return configError(fmt.Errorf("context.default_cursor: %w", err))
	}
	if _, err := c.level(); err != nil {
		return configError(err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return configError(fmt.Errorf("logging.format must be text or json (got %q)", c.Logging.Format))
	}
	return nil
}

// version returns the canonical schema version.
func (c *Config) version() (string, error) {
	v := strings.TrimSpace(c.Version)
	if v == "" {
		return SupportedMajor, nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("version %q is not a semantic version", c.Version)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return "", fmt.Errorf("version %s is not supported (want %s.x)", v, SupportedMajor)
	}
	return semver.Canonical(v), nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if c.Logging.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}

// ContextOptions converts the context section. Window and Logger are left
// for the caller.
func (c *Config) ContextOptions() (overlay.Options, error) {
	cursor, err := graphics.ParseCursorIcon(c.Context.DefaultCursor)
	if err != nil {
		return overlay.Options{}, configError(fmt.Errorf("context.default_cursor: %w", err))
	}
	return overlay.Options{
		StartDrawOrder:   c.Context.StartDrawOrder,
		DefaultCursor:    cursor,
		BlurOnEmptyPress: c.Context.BlurOnEmptyPress,
	}, nil
}

// Logger builds a slog logger writing to w with the configured level and
// format.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, configError(err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(c.Logging.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if c.App.Name != "" {
		logger = logger.With(slog.String("app", c.App.Name))
	}
	return logger, nil
}

// ResolveAppName returns app.name, falling back to the last element of the
// module path in dir's go.mod, then to the directory name.
func (c *Config) ResolveAppName(dir string) string {
	if name := strings.TrimSpace(c.App.Name); name != "" {
		return name
	}
	if path, err := modulePath(dir); err == nil {
		if prefix, _, ok := module.SplitPathVersion(path); ok {
			if i := strings.LastIndex(prefix, "/"); i >= 0 {
				return prefix[i+1:]
			}
			return prefix
		}
	}
	return filepath.Base(dir)
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func configError(err error) error {
	return &errors.OverlayError{Op: "config.Load", Kind: errors.KindConfig, Err: err}
}
