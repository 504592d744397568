package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/vango-dev/tagkit/internal/errors"
)

const (
	// EnvPrefix is the prefix of environment overrides.
	EnvPrefix = "TAGKIT_"

	// DefaultAddress is the default preview server address.
	DefaultAddress = ":8080"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "tagkit"
)

// FileNames are the configuration file names searched by Load, in order.
var FileNames = []string{"tagkit.toml", "tagkit.yaml", "tagkit.yml", "tagkit.json"}

// Config is the complete tagkit configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Theme   ThemeConfig   `koanf:"theme"`
	Metrics MetricsConfig `koanf:"metrics"`
	Publish PublishConfig `koanf:"publish"`
	Log     LogConfig     `koanf:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Address         string        `koanf:"address"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
}

// ThemeConfig selects the theme file and the default theme.
type ThemeConfig struct {
	// File is a theme file path, relative to the config file.
	File string `koanf:"file"`
	// Default is the theme applied when an element does not select one.
	Default string `koanf:"default"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Namespace string `koanf:"namespace"`
}

// PublishConfig configures the publish destination. Bucket selects S3;
// otherwise documents are written below Dir.
type PublishConfig struct {
	Bucket    string `koanf:"bucket"`
	Prefix    string `koanf:"prefix"`
	Region    string `koanf:"region"`
	Endpoint  string `koanf:"endpoint"`
	PathStyle bool   `koanf:"path_style"`
	Dir       string `koanf:"dir"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `koanf:"level"`
	// Format is text or json.
	Format string `koanf:"format"`
}

// defaults is loaded before any file or environment value.
func defaults() map[string]any {
	return map[string]any{
		"server.address":          DefaultAddress,
		"server.shutdown_timeout": "30s",
		"server.max_body_bytes":   1 << 20,
		"metrics.namespace":       DefaultNamespace,
		"publish.dir":             "public",
		"log.level":               "info",
		"log.format":              "text",
	}
}

// New returns a Config with default values and environment overrides.
func New() (*Config, error) {
	k, err := base()
	if err != nil {
		return nil, err
	}
	return unmarshal(k, "")
}

// Load reads the first configuration file found in dir. A directory
// without a configuration file yields defaults plus environment overrides.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return New()
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Newf(errors.CodeConfigLoad, "Cannot read %s.", path).Wrap(err).
			WithSuggestion("Create the file or run without --config to use defaults.")
	}

	k, err := base()
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Newf(errors.CodeConfigLoad, "Failed to parse %s.", path).Wrap(err)
	}
	// Environment overrides win over the file.
	if err := loadEnv(k); err != nil {
		return nil, err
	}
	return unmarshal(k, path)
}

// base loads defaults and environment overrides.
func base() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.New(errors.CodeConfigLoad).Wrap(err)
	}
	if err := loadEnv(k); err != nil {
		return nil, err
	}
	return k, nil
}

func loadEnv(k *koanf.Koanf) error {
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return errors.Newf(errors.CodeConfigLoad, "Failed to read %s environment variables.", EnvPrefix).Wrap(err)
	}
	return nil
}

func unmarshal(k *koanf.Koanf, path string) (*Config, error) {
	var cfg Config
	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, conf); err != nil {
		return nil, errors.New(errors.CodeConfigLoad).
			WithDetail("Failed to decode configuration: " + err.Error())
	}
	cfg.configPath = path
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	}
	return nil, errors.Newf(errors.CodeConfigLoad, "Unsupported configuration file %s.", path).
		WithSuggestion("Use tagkit.toml, tagkit.yaml or tagkit.json.")
}

var namespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch {
	case c.Server.Address == "":
		return errors.Newf(errors.CodeConfigInvalid, "server.address must not be empty.")
	case c.Server.ShutdownTimeout <= 0:
		return errors.Newf(errors.CodeConfigInvalid, "server.shutdown_timeout must be positive.")
	case c.Server.MaxBodyBytes <= 0:
		return errors.Newf(errors.CodeConfigInvalid, "server.max_body_bytes must be positive.")
	case !namespacePattern.MatchString(c.Metrics.Namespace):
		return errors.Newf(errors.CodeConfigInvalid, "metrics.namespace %q is not a valid metric name prefix.", c.Metrics.Namespace)
	case c.Theme.Default != "" && c.Theme.File == "":
		return errors.Newf(errors.CodeConfigInvalid, "theme.default is set but theme.file is empty.").
			WithSuggestion("Set theme.file to the file defining the " + c.Theme.Default + " theme.")
	case c.Publish.Bucket == "" && c.Publish.Dir == "":
		return errors.Newf(errors.CodeConfigInvalid, "Either publish.bucket or publish.dir must be set.")
	case strings.HasPrefix(c.Publish.Prefix, "/"):
		return errors.Newf(errors.CodeConfigInvalid, "publish.prefix %q must be relative.", c.Publish.Prefix)
	}
	if _, ok := levels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.Newf(errors.CodeConfigInvalid, "log.level %q is not one of debug, info, warn, error.", c.Log.Level)
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return errors.Newf(errors.CodeConfigInvalid, "log.format %q is not text or json.", c.Log.Format)
	}
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// ThemePath returns the theme file path resolved against the config file
// directory, or "" when no theme file is configured.
func (c *Config) ThemePath() string {
	if c.Theme.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Theme.File) || c.configPath == "" {
		return c.Theme.File
	}
	return filepath.Join(c.Dir(), c.Theme.File)
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Logger builds a slog.Logger writing to w as configured.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levels[strings.ToLower(c.Log.Level)]}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
