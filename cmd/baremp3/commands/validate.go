package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aikumo/baremp3/internal/errors"
	"github.com/aikumo/baremp3/internal/scan"
	"github.com/aikumo/baremp3/pkg/fileutil"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate INPUT...",
	Short: "Check the frame structure of MP3 files",
	Long: `Walk every frame of the given files and report structural findings:
truncated main data, mid-stream sample rate changes, trailing bytes
and other oddities. Exits non-zero when any file has errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), args)
	},
}

func runValidate(w io.Writer, args []string) error {
	format := scan.FormatText
	if validateJSON {
		format = scan.FormatJSON
	}
	reporter := scan.NewReporter(w, format)

	failed := 0
	for _, input := range args {
		data, err := fileutil.ReadFileWithLimit(input)
		if err != nil {
			return errors.NewSystemError(err, "check the input path")
		}

		result := scan.Check(scan.Walk(data))

		if !validateJSON && len(args) > 1 {
			fmt.Fprintf(w, "%s:\n", input)
		}
		if err := reporter.Report(result); err != nil {
			return err
		}
		if result.HasErrors() {
			failed++
		}
	}

	if failed > 0 {
		return errors.NewExitError(
			errors.Newf("%d of %d file(s) failed validation", failed, len(args)),
			errors.ExitUser)
	}
	return nil
}
