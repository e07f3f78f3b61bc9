package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/findpay/foundation/core/error"
	mdwlog "github.com/msto63/findpay/foundation/core/log"
	"github.com/msto63/findpay/internal/command"
	"github.com/msto63/findpay/internal/findpayment"
	"github.com/msto63/findpay/internal/render"
	"github.com/msto63/findpay/pkg/core/config"
	"github.com/msto63/findpay/pkg/core/logging"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string
)

// errFailed reports that input was rejected; the result has already been
// printed, so Execute does not print it again
var errFailed = errors.New("input rejected")

// app holds the objects built from configuration for one invocation
type app struct {
	cfg       *config.Config
	logger    *mdwlog.Logger
	requestID string
	parser    *findpayment.Parser
	registry  *command.Registry
	format    render.Format
	closeLog  func() error
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "findpay",
	Short: "findpay - parse and check findpayment commands",
	Long: `findpay parses the arguments of the findpayment command:

  findpayment INDEX [a/AMOUNT | d/DATE | r/REMARK]

Exactly one filter must be given. Amounts have at most two decimal places,
dates use YYYY-MM-DD and may not lie in the future, remarks may not be empty.

Commands:
  parse    - parse findpayment arguments
  check    - check a file of full command lines
  shell    - interactive shell
  version  - show version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errFailed) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $FINDPAY_CONFIG or ./configs/findpay.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format: text, json or yaml (default from config)")
}

// setup loads configuration and builds the parser, registry and logger
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logOut, closeLog, err := logOutput(cmd, cfg)
	if err != nil {
		return err
	}

	lc := logging.FromConfig(cfg, verbose)
	lc.Output = logOut
	logger, requestID := logging.NewRequestLogger(logging.NewLogger(lc))

	opts, err := cfg.ParserOptions(logger)
	if err != nil {
		return err
	}
	parser := findpayment.New(opts)

	registry, err := command.NewDefault(parser, command.Options{Logger: logger})
	if err != nil {
		return err
	}

	formatName := cfg.Output.Format
	if outputFormat != "" {
		formatName = outputFormat
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logger.Debug("findpay started", mdwlog.Fields{
		"command": cmd.Name(),
		"format":  string(format),
		"config":  cfgFile,
	})

	current = &app{
		cfg:       cfg,
		logger:    logger,
		requestID: requestID,
		parser:    parser,
		registry:  registry,
		format:    format,
		closeLog:  closeLog,
	}
	return nil
}

// logOutput picks where log entries go. The shell owns the terminal, so its
// logs go to shell.log_file or nowhere; every other command logs to stderr.
func logOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	if cmd != shellCmd {
		return cmd.ErrOrStderr(), noop, nil
	}
	if cfg.Shell.LogFile == "" {
		return io.Discard, noop, nil
	}
	f, err := os.OpenFile(cfg.Shell.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, mdwerror.Wrap(err, "failed to open shell log file").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", cfg.Shell.LogFile)
	}
	return f, f.Close, nil
}

// withRequestID tags a coded error with the invocation's request ID
func withRequestID(err error) error {
	if mdwErr, ok := mdwerror.As(err); ok && current != nil {
		mdwErr.WithRequestID(current.requestID)
	}
	return err
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
