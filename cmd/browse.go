package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Manu343726/isatable/pkg/isa"
	"github.com/Manu343726/isatable/pkg/table"
	"github.com/Manu343726/isatable/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the opcode table interactively",
	Long: `Opens a full screen, scrollable view of the opcode table.

Keys:
  Up/Down, PgUp/PgDn, Home/End   move the selection
  Esc, q                         quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fail(exitConfig, "browse requires an interactive terminal, use \"isatable show\" instead")
		}

		set := isa.Default()
		app := tview.NewApplication()

		if err := app.SetRoot(newBrowser(app, &set), true).EnableMouse(true).Run(); err != nil {
			fail(exitConfig, "%v", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(browseCmd)
}

// Builds the table view with one line per opcode, below a fixed header
func newTableView(rows []table.Row, bits int) *tview.Table {
	view := tview.NewTable().
		SetFixed(1, 0).
		SetSelectable(true, false)

	headers := []string{table.Header[0], "Binary", table.Header[1], table.Header[2]}
	for column, name := range headers {
		view.SetCell(0, column, tview.NewTableCell(name).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	for i, row := range rows {
		view.SetCell(i+1, 0, tview.NewTableCell(strconv.Itoa(row.OpCode)).SetAlign(tview.AlignRight))
		view.SetCell(i+1, 1, tview.NewTableCell(utils.FormatUintBinary(uint64(row.OpCode), bits)).SetTextColor(tcell.ColorDarkCyan))
		view.SetCell(i+1, 2, tview.NewTableCell(row.Mnemonic).SetExpansion(1))
		view.SetCell(i+1, 3, tview.NewTableCell(row.AddressingMode).SetExpansion(1))
	}

	return view
}

func describeRow(set *isa.InstructionSet, row table.Row) string {
	mode := row.AddressingMode
	if mode == "" {
		mode = "no memory operand"
	}

	return fmt.Sprintf(" opcode %v (%v) of %v: %v, %v", row.OpCode, utils.FormatUintHex(uint64(row.OpCode), 2), set.RowCount(), row.Mnemonic, mode)
}

func newBrowser(app *tview.Application, set *isa.InstructionSet) tview.Primitive {
	rows := table.Generate(*set)
	view := newTableView(rows, set.OpCodeBits())
	view.SetBorder(true).SetTitle(" isatable ")

	status := tview.NewTextView()

	view.SetSelectionChangedFunc(func(row, column int) {
		if row >= 1 && row <= len(rows) {
			status.SetText(describeRow(set, rows[row-1]))
		}
	})

	view.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			app.Stop()
		}
	})

	view.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	if len(rows) > 0 {
		view.Select(1, 0)
		status.SetText(describeRow(set, rows[0]))
	}

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(view, 0, 1, true).
		AddItem(status, 1, 0, false)
}
