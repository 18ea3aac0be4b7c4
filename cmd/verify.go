package cmd

import (
	"log/slog"

	"github.com/Manu343726/isatable/pkg/isa"
	"github.com/Manu343726/isatable/pkg/table"
	"github.com/Manu343726/isatable/pkg/translate"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the generated table files agree with each other",
	Long: `Reads back the structured and the delimited tables (same paths, format and encoding
flags as "generate") and checks that:

  - opcodes are 0, 1, 2, ... with no gaps or duplicates
  - both files contain exactly the same rows, in the same order
  - the rows match the current instruction set definition`,
	Args: cobra.NoArgs,
	Run:  runVerify,
}

func init() {
	RootCmd.AddCommand(verifyCmd)
}

// Reads every output and compares it with the expected table. Returns the first problem found.
func verifyOutputs(targets []output, expected []table.Row) error {
	for _, target := range targets {
		rows, err := table.ReadFile(target.path, target.format)
		if err != nil {
			return err
		}

		if err := table.CheckOpCodes(rows); err != nil {
			return err
		}

		if err := table.Compare(expected, rows); err != nil {
			return err
		}

		slog.Debug("table verified", "path", target.path, "format", target.format.Name(), "rows", len(rows))
	}

	return nil
}

func runVerify(cmd *cobra.Command, args []string) {
	targets, err := outputs()
	if err != nil {
		fail(exitConfig, "%v", err)
	}

	expected := table.Generate(isa.Default())

	if err := verifyOutputs(targets, expected); err != nil {
		fail(exitMismatch, "%v", err)
	}

	colorSuccess.Fprintln(cmd.OutOrStdout(), translate.From("%d opcodes verified", len(expected)))
}
