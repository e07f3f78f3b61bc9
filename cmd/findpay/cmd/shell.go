// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive shell
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/findpay/internal/tui/shell"
)

var shellCmd = &cobra.Command{
	Use:     "shell",
	Aliases: []string{"repl"},
	Short:   "Start the interactive shell",
	Long: `Starts an interactive shell that parses full command lines as you type them.

Keys:
  Enter       Run the line
  ↑/↓         Browse history
  PgUp/PgDn   Scroll
  Ctrl+C      Quit

Words:
  help        Show command usage
  clear       Clear the screen
  exit, quit  Leave the shell`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	defer current.closeLog()

	m := shell.New(current.registry, current.logger, shell.Config{
		Prompt:      current.cfg.Shell.Prompt,
		HistorySize: current.cfg.Shell.HistorySize,
		SessionID:   current.requestID,
	})
	return shell.Run(m, cmd.InOrStdin(), cmd.OutOrStdout())
}
