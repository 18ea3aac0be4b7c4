package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Manu343726/isatable/pkg/isa"
	"github.com/Manu343726/isatable/pkg/table"
	"github.com/Manu343726/isatable/pkg/textenc"
	"github.com/Manu343726/isatable/pkg/translate"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the opcode table files",
	Long: `Generates the opcode table of the CPU instruction set and writes it twice:

  - as a structured file keyed by opcode, each entry holding the operation code (COP)
    and the addressing mode (MA)
  - as a semicolon delimited file with the columns "Number", "Operation Code" and
    "Addressing Mode", encoded with the host character encoding by default

Both files are overwritten and always contain the same rows in the same order.

Examples:
  # Write instructions.json and instructions.csv in the current directory
  isatable generate

  # Write a YAML table and a Windows-1252 delimited table
  isatable generate -f yaml -j instructions.yaml -e windows-1252`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	RootCmd.AddCommand(generateCmd)
}

type output struct {
	path   string
	format table.Format
}

func outputs() ([]output, error) {
	structured, err := settings.StructuredFormat()
	if err != nil {
		return nil, err
	}

	delimited, err := settings.DelimitedFormat()
	if err != nil {
		return nil, err
	}

	slog.Debug("delimited table encoding", "encoding", textenc.Name(delimited.Encoding))

	return []output{
		{path: settings.Output.Structured, format: structured},
		{path: settings.Output.Delimited, format: delimited},
	}, nil
}

func runGenerate(cmd *cobra.Command, args []string) {
	targets, err := outputs()
	if err != nil {
		fail(exitConfig, "%v", err)
	}

	set := isa.Default()
	rows := table.Generate(set)

	slog.Debug("generated opcode table", "mnemonics", len(set.Instructions), "rows", len(rows), "bits", set.OpCodeBits())

	if !set.FitsCOPMA() {
		slog.Warn("opcodes do not fit in the COP/MA field", "bits", set.OpCodeBits(), "field_bits", isa.COPMABits)
	}

	for _, target := range targets {
		if err := table.WriteFile(target.path, target.format, rows); err != nil {
			fail(exitOutput, "%v", err)
		}

		slog.Info("wrote opcode table", "path", target.path, "format", target.format.Name(), "rows", len(rows))
	}

	colorSuccess.Fprint(cmd.OutOrStdout(), translate.From("%d opcodes written to ", len(rows)))
	fmt.Fprintf(cmd.OutOrStdout(), "%v and %v\n", colorPath.Sprint(targets[0].path), colorPath.Sprint(targets[1].path))
}
