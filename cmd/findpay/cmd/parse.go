package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/findpay/internal/render"
)

var parseCmd = &cobra.Command{
	Use:   "parse ARGS...",
	Short: "Parse findpayment arguments",
	Long: `Parses the arguments of one findpayment command and prints the request
or the reason it was rejected. The arguments are joined with single spaces.
Exits with status 1 if the arguments are rejected.

Examples:
  findpay parse 1 a/23.50
  findpay parse 3 d/2023-12-30
  findpay parse "4 r/cca shirt"
  findpay parse --format json 2
  findpay parse -- -1 a/5`,
	Args: cobra.ArbitraryArgs,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	req, err := current.parser.Parse(input)
	err = withRequestID(err)
	result := render.FromRequest(input, req, err)
	if err != nil {
		current.logger.LogError(err)
	}

	w := render.NewWriter(cmd.OutOrStdout(), current.format)
	if werr := w.Write(result); werr != nil {
		return werr
	}
	if werr := w.Close(); werr != nil {
		return werr
	}

	if !result.OK {
		return errFailed
	}
	return nil
}
