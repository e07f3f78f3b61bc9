package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/findpay/foundation/core/error"
	mdwlog "github.com/msto63/findpay/foundation/core/log"
	"github.com/msto63/findpay/internal/findpayment"
	"github.com/msto63/findpay/internal/render"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "FINDPAY_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Shell   ShellConfig   `toml:"shell" yaml:"shell"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds findpayment parser settings
type ParserConfig struct {
	MaxInputLength int    `toml:"max_input_length" yaml:"max_input_length"`
	StrictPrefixes bool   `toml:"strict_prefixes" yaml:"strict_prefixes"`
	TimeZone       string `toml:"time_zone" yaml:"time_zone"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// ShellConfig holds interactive shell settings
type ShellConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistorySize int    `toml:"history_size" yaml:"history_size"`
	// LogFile receives log output while the shell owns the terminal; empty discards it
	LogFile string `toml:"log_file" yaml:"log_file"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file; the extension decides
// the decoder (.yaml and .yml are YAML, everything else TOML)
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, mdwerror.Newf("config file not found: %s", path).
			WithCode(mdwerror.CodeMissingConfig).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, parseError(err, path)
		}
	default:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, parseError(err, path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, mdwerror.Newf("unknown config keys: %s", strings.Join(keys, ", ")).
				WithCode(mdwerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from the FINDPAY_CONFIG environment variable
// or the first default location that exists. Without any file it returns
// Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	return []string{
		"./configs/findpay.toml",
		"./findpay.toml",
		filepath.Join(os.Getenv("HOME"), ".config/findpay/findpay.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "findpay"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Parser
	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = findpayment.DefaultMaxInputLength
	}
	if c.Parser.TimeZone == "" {
		c.Parser.TimeZone = "Local"
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}

	// Shell
	if c.Shell.Prompt == "" {
		c.Shell.Prompt = "findpay> "
	}
	if c.Shell.HistorySize == 0 {
		c.Shell.HistorySize = 100
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Parser.TimeZone = os.ExpandEnv(c.Parser.TimeZone)
	c.Shell.Prompt = os.ExpandEnv(c.Shell.Prompt)
	c.Shell.LogFile = os.ExpandEnv(c.Shell.LogFile)
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	if c.Parser.MaxInputLength < 0 {
		return invalid("parser.max_input_length", c.Parser.MaxInputLength, nil)
	}
	if _, err := time.LoadLocation(c.Parser.TimeZone); err != nil {
		return invalid("parser.time_zone", c.Parser.TimeZone, err)
	}
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return invalid("output.format", c.Output.Format, nil)
	}
	if c.Shell.HistorySize < 0 {
		return invalid("shell.history_size", c.Shell.HistorySize, nil)
	}
	return nil
}

// Location returns the time zone used to decide the current day
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Parser.TimeZone)
	if err != nil {
		return nil, invalid("parser.time_zone", c.Parser.TimeZone, err)
	}
	return loc, nil
}

// ParserOptions converts the parser section into findpayment options
func (c *Config) ParserOptions(logger *mdwlog.Logger) (findpayment.Options, error) {
	loc, err := c.Location()
	if err != nil {
		return findpayment.Options{}, err
	}
	return findpayment.Options{
		Logger:         logger,
		MaxInputLength: c.Parser.MaxInputLength,
		StrictPrefixes: c.Parser.StrictPrefixes,
		Location:       loc,
	}, nil
}

func parseError(err error, path string) error {
	return mdwerror.Wrap(err, "failed to parse config").
		WithCode(mdwerror.CodeInvalidConfig).
		WithDetail("path", path)
}

func invalid(key string, value interface{}, cause error) error {
	msg := fmt.Sprintf("invalid value for %s: %v", key, value)
	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, msg)
	} else {
		err = mdwerror.New(msg)
	}
	return err.WithCode(mdwerror.CodeInvalidConfig).WithDetail("key", key)
}
