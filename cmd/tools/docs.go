package tools

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/isatable/pkg/isa"
	"github.com/Manu343726/isatable/pkg/utils"
	"github.com/spf13/cobra"
)

var supportedModules = map[string]func() string{
	"isa": func() string {
		set := isa.Default()
		return set.DocString()
	},
	"isa.registers": func() string {
		return utils.FormatSlice(isa.Registers(), "\n")
	},
	"isa.addressing_modes": func() string {
		return utils.FormatSlice(isa.AddressingModes(), "\n")
	},
	"isa.conditions": func() string {
		return utils.FormatSlice(isa.Default().Conditions, "\n")
	},
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show isatable documentation",
	Long: `Dumps the documentation of the specified module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported modules:
` + strings.Join(utils.Map(utils.Keys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs: utils.Keys(supportedModules),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), supportedModules[args[0]]())
			return nil
		}

		return writeDocs(outputFile, supportedModules[args[0]]())
	},
}

func writeDocs(path string, docs string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating documentation file: %w", err)
	}

	if _, err := fmt.Fprintln(file, docs); err != nil {
		file.Close()
		return fmt.Errorf("writing documentation file: %w", err)
	}

	return file.Close()
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
