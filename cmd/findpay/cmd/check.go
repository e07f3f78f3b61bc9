package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/findpay/foundation/core/error"
	mdwlog "github.com/msto63/findpay/foundation/core/log"
	"github.com/msto63/findpay/internal/render"
)

var checkCmd = &cobra.Command{
	Use:   "check [FILE|-]",
	Short: "Check a file of command lines",
	Long: `Reads full command lines (e.g. "findpayment 1 a/23.50" or "fp 2 r/lunch")
from FILE, or from standard input when FILE is "-" or missing, and prints
one result per line followed by a summary. Blank lines and lines starting
with # are skipped. Exits with status 1 if any line is rejected.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	w := render.NewWriter(cmd.OutOrStdout(), current.format)
	var summary render.Summary

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		inv, derr := current.registry.Dispatch(line)
		derr = withRequestID(derr)
		result := render.FromInvocation(line, inv, derr)
		result.Line = lineNo
		summary.Add(result)

		if derr != nil {
			current.logger.WithField("line", lineNo).LogError(derr)
		}
		if err := w.Write(result); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return mdwerror.Wrap(err, "failed to read input").
			WithCode(mdwerror.CodeInvalidInput)
	}

	if err := w.WriteSummary(summary); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	current.logger.Debug("Check completed", mdwlog.Fields{
		"total":  summary.Total,
		"passed": summary.Passed,
		"failed": summary.Failed,
	})

	if summary.Failed > 0 {
		return errFailed
	}
	return nil
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, mdwerror.Wrap(err, "failed to open input").
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("path", args[0])
	}
	return f, func() { _ = f.Close() }, nil
}
