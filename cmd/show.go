package cmd

import (
	"io"

	"github.com/Manu343726/isatable/pkg/isa"
	"github.com/Manu343726/isatable/pkg/table"
	"github.com/Manu343726/isatable/pkg/utils"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var showMnemonic string
var showMarkdown bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the opcode table",
	Long: `Prints the opcode table to stdout, including the binary encoding of each opcode.
Nothing is written to disk.

Examples:
  # Whole table
  isatable show

  # Only the conditional jumps, as a markdown table
  isatable show -m JUMPC --markdown`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		set := isa.Default()

		rows, err := selectRows(&set, showMnemonic)
		if err != nil {
			fail(exitConfig, "%v", err)
		}

		renderTable(cmd.OutOrStdout(), rows, set.OpCodeBits(), showMarkdown)
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showMnemonic, "mnemonic", "m", "", "Only show the opcodes of this mnemonic")
	showCmd.Flags().BoolVar(&showMarkdown, "markdown", false, "Render the table as markdown")
}

// Returns the rows of the given mnemonic, or the whole table if mnemonic is empty.
// Opcodes are the ones of the whole table.
func selectRows(set *isa.InstructionSet, mnemonic string) ([]table.Row, error) {
	rows := table.Generate(*set)

	if mnemonic == "" {
		return rows, nil
	}

	first, count, found := set.OpCodeRange(mnemonic)
	if !found {
		return nil, utils.MakeError(isa.ErrUnknownMnemonic, "'%v' (known: %q)", mnemonic, set.Mnemonics())
	}

	return rows[first : first+count], nil
}

func renderTable(w io.Writer, rows []table.Row, bits int, markdown bool) {
	t := prettytable.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(prettytable.StyleLight)

	t.AppendHeader(prettytable.Row{table.Header[0], "Binary", table.Header[1], table.Header[2]})

	for _, row := range rows {
		t.AppendRow(prettytable.Row{
			row.OpCode,
			utils.FormatUintBinary(uint64(row.OpCode), bits),
			row.Mnemonic,
			row.AddressingMode,
		})
	}

	t.AppendFooter(prettytable.Row{"", "", "Total", len(rows)})

	if markdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
}
