package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/findpay/foundation/core/error"
	"github.com/msto63/findpay/internal/findpayment"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.General.Name != "findpay" {
		t.Errorf("General.Name = %v, want findpay", cfg.General.Name)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.Parser.MaxInputLength != findpayment.DefaultMaxInputLength {
		t.Errorf("Parser.MaxInputLength = %v", cfg.Parser.MaxInputLength)
	}
	if cfg.Parser.TimeZone != "Local" {
		t.Errorf("Parser.TimeZone = %v, want Local", cfg.Parser.TimeZone)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %v, want text", cfg.Output.Format)
	}
	if cfg.Shell.Prompt != "findpay> " {
		t.Errorf("Shell.Prompt = %q", cfg.Shell.Prompt)
	}
	if cfg.Shell.HistorySize != 100 {
		t.Errorf("Shell.HistorySize = %v, want 100", cfg.Shell.HistorySize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/findpay.toml")
	if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("Load() error = %v, want MISSING_CONFIG", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "findpay.toml", `
[general]
name = "test-findpay"
log_level = "debug"

[parser]
max_input_length = 256
strict_prefixes = true
time_zone = "UTC"

[output]
format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "test-findpay" {
		t.Errorf("General.Name = %v", cfg.General.Name)
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v", cfg.General.LogLevel)
	}
	if cfg.Parser.MaxInputLength != 256 || !cfg.Parser.StrictPrefixes {
		t.Errorf("Parser = %+v", cfg.Parser)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %v", cfg.Output.Format)
	}
	// untouched sections get defaults
	if cfg.Shell.HistorySize != 100 {
		t.Errorf("Shell.HistorySize = %v, want default 100", cfg.Shell.HistorySize)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "findpay.yaml", `
general:
  log_format: json
parser:
  time_zone: Asia/Singapore
shell:
  prompt: "fp> "
  history_size: 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogFormat != "json" {
		t.Errorf("General.LogFormat = %v", cfg.General.LogFormat)
	}
	if cfg.Parser.TimeZone != "Asia/Singapore" {
		t.Errorf("Parser.TimeZone = %v", cfg.Parser.TimeZone)
	}
	if cfg.Shell.Prompt != "fp> " || cfg.Shell.HistorySize != 10 {
		t.Errorf("Shell = %+v", cfg.Shell)
	}
	if cfg.General.Name != "findpay" {
		t.Errorf("General.Name = %v, want default", cfg.General.Name)
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %v, want default", cfg.Output.Format)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"broken toml", "bad.toml", "[general\nname = 1"},
		{"unknown toml key", "extra.toml", "[parser]\nmax_len = 3\n"},
		{"broken yaml", "bad.yaml", "general: [unclosed"},
		{"unknown yaml key", "extra.yaml", "output:\n  colour: red\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestConfig_expandEnvVars(t *testing.T) {
	t.Setenv("FINDPAY_TEST_ZONE", "Europe/Berlin")

	t.Setenv("FINDPAY_TEST_LOGS", "/var/log/findpay")

	cfg := Default()
	cfg.Parser.TimeZone = "${FINDPAY_TEST_ZONE}"
	cfg.Shell.LogFile = "${FINDPAY_TEST_LOGS}/shell.log"
	cfg.expandEnvVars()

	if cfg.Parser.TimeZone != "Europe/Berlin" {
		t.Errorf("Parser.TimeZone = %v", cfg.Parser.TimeZone)
	}
	if cfg.Shell.LogFile != "/var/log/findpay/shell.log" {
		t.Errorf("Shell.LogFile = %v", cfg.Shell.LogFile)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{"bad log level", func(c *Config) { c.General.LogLevel = "loud" }, "general.log_level"},
		{"bad log format", func(c *Config) { c.General.LogFormat = "xml" }, "general.log_format"},
		{"negative input length", func(c *Config) { c.Parser.MaxInputLength = -1 }, "parser.max_input_length"},
		{"unknown time zone", func(c *Config) { c.Parser.TimeZone = "Mars/Olympus" }, "parser.time_zone"},
		{"bad output format", func(c *Config) { c.Output.Format = "csv" }, "output.format"},
		{"negative history", func(c *Config) { c.Shell.HistorySize = -5 }, "shell.history_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			mdwErr, ok := mdwerror.As(err)
			if !ok {
				t.Fatalf("Validate() error = %v, want coded error", err)
			}
			if mdwErr.Code() != mdwerror.CodeInvalidConfig {
				t.Errorf("Code() = %v", mdwErr.Code())
			}
			if key, _ := mdwErr.Detail("key"); key != tt.wantKey {
				t.Errorf("key = %v, want %v", key, tt.wantKey)
			}
		})
	}
}

func TestConfig_Validate_OutputFormatAliases(t *testing.T) {
	for _, format := range []string{"text", "JSON", "yaml", "yml"} {
		t.Run(format, func(t *testing.T) {
			cfg := Default()
			cfg.Output.Format = format
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}

	path := writeConfig(t, "findpay.toml", "[output]\nformat = \"yml\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() rejected format yml from file: %v", err)
	}
}

func TestConfig_ParserOptions(t *testing.T) {
	cfg := Default()
	cfg.Parser.TimeZone = "UTC"
	cfg.Parser.StrictPrefixes = true
	cfg.Parser.MaxInputLength = 64

	opts, err := cfg.ParserOptions(nil)
	if err != nil {
		t.Fatalf("ParserOptions() error = %v", err)
	}
	if opts.Location != time.UTC {
		t.Errorf("Location = %v, want UTC", opts.Location)
	}
	if !opts.StrictPrefixes || opts.MaxInputLength != 64 {
		t.Errorf("options = %+v", opts)
	}

	cfg.Parser.TimeZone = "Nowhere/Special"
	if _, err := cfg.ParserOptions(nil); err == nil {
		t.Error("ParserOptions() accepted an unknown time zone")
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "env.toml", "[output]\nformat = \"yaml\"\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %v, want yaml", cfg.Output.Format)
	}

	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "missing.toml"))
	if _, err := LoadFromEnv(); !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("LoadFromEnv() error = %v, want MISSING_CONFIG", err)
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	wd, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	defer os.Chdir(wd)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "findpay" {
		t.Errorf("expected defaults, got %+v", cfg.General)
	}
}
