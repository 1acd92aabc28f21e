package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/shiv50084/fantasyname/display"
	"github.com/shiv50084/fantasyname/namegen/symbols"
)

// SymbolsCmd represents the symbols command
var SymbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Show the effective symbol table",
	Long: `Show every symbol the pattern compiler can expand, with candidate counts
and sample candidates.

With --table the file is layered over the built-in table, exactly as forge
and list see it: file symbols win where both define one. Characters without
a table entry compile as literals.

Examples:
  namegen symbols
  namegen symbols --table elvish.toml
  namegen symbols --json`,
	RunE: runSymbols,
}

func init() {
	SymbolsCmd.Flags().Bool("json", false, "Output the table in JSON format")
	SymbolsCmd.Flags().String("table", "", "TOML symbol table layered over the built-in table")
	SymbolsCmd.Flags().Int("samples", 6, "Sample candidates to show per symbol")
}

// symbolInfo is one row of symbols output.
type symbolInfo struct {
	Symbol      string   `json:"symbol"`
	Candidates  int      `json:"candidates"`
	Description string   `json:"description"`
	Samples     []string `json:"samples"`
}

func runSymbols(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	table, err := effectiveTable(tablePathFromFlag(cmd, cfg))
	if err != nil {
		return err
	}

	samples, _ := cmd.Flags().GetInt("samples")
	infos := tableInfos(table, samples)

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(infos)
	}

	pterm.Printf("%d symbols\n\n", table.Len())
	for _, info := range infos {
		pterm.Printf("  %s  %s (%d candidates)\n",
			pterm.LightCyan(info.Symbol), info.Description, info.Candidates)
		pterm.Printf("     %s\n", pterm.Gray(strings.Join(info.Samples, " ")))
	}
	return nil
}

// tableInfos summarizes each symbol of the table with up to samples example
// candidates, in ascending symbol order.
func tableInfos(table symbols.Table, samples int) []symbolInfo {
	infos := make([]symbolInfo, 0, table.Len())
	for _, symbol := range table.Symbols() {
		candidates, _ := table.Lookup(symbol)
		n := samples
		if n > len(candidates) {
			n = len(candidates)
		}
		if n < 0 {
			n = 0
		}
		infos = append(infos, symbolInfo{
			Symbol:      string(symbol),
			Candidates:  len(candidates),
			Description: symbols.Describe(symbol),
			Samples:     candidates[:n],
		})
	}
	return infos
}
