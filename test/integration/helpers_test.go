package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	mdwlog "github.com/msto63/findpay/foundation/core/log"
	"github.com/msto63/findpay/internal/command"
	"github.com/msto63/findpay/internal/findpayment"
	"github.com/msto63/findpay/pkg/core/config"
	"github.com/msto63/findpay/pkg/core/logging"
)

// Test configuration from environment or defaults
type TestConfig struct {
	ConfigPath string
	TimeZone   string
}

func getTestConfig() TestConfig {
	return TestConfig{
		ConfigPath: getEnv("TEST_FINDPAY_CONFIG", filepath.Join(repoRoot(), "configs", "findpay.toml")),
		TimeZone:   getEnv("TEST_FINDPAY_TIMEZONE", "UTC"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// repoRoot returns the module root relative to this file
func repoRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

// stack is the wired application: config, logger, parser and registry
type stack struct {
	cfg      *config.Config
	logs     *bytes.Buffer
	logger   *mdwlog.Logger
	parser   *findpayment.Parser
	registry *command.Registry
}

// newStack builds the application the way the CLI does, from the shipped
// config file with the zone overridden for deterministic dates
func newStack(t *testing.T) *stack {
	t.Helper()
	tc := getTestConfig()

	cfg, err := config.Load(tc.ConfigPath)
	if err != nil {
		t.Fatalf("config.Load(%s) error = %v", tc.ConfigPath, err)
	}
	cfg.Parser.TimeZone = tc.TimeZone
	cfg.General.LogLevel = "debug"
	cfg.General.LogFormat = "json"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	logs := &bytes.Buffer{}
	lc := logging.FromConfig(cfg, false)
	lc.Output = logs
	logger, _ := logging.NewRequestLogger(logging.NewLogger(lc))

	opts, err := cfg.ParserOptions(logger)
	if err != nil {
		t.Fatalf("ParserOptions() error = %v", err)
	}
	parser := findpayment.New(opts)

	registry, err := command.NewDefault(parser, command.Options{Logger: logger})
	if err != nil {
		t.Fatalf("NewDefault() error = %v", err)
	}

	return &stack{cfg: cfg, logs: logs, logger: logger, parser: parser, registry: registry}
}
