package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/spf13/cobra"

	"github.com/shiv50084/fantasyname/namegen/symbols"
)

var (
	tablegenInput  string
	tablegenOutput string
)

var rootCmd = &cobra.Command{
	Use:   "tablegen",
	Short: "Generate the built-in symbol table source from its TOML definition",
	Long: `Generate Go source for the built-in symbol table.

Reads a TOML symbol table, validates it, and emits a Go file declaring
defaultCandidates(), the function backing symbols.Default(). The symbols
package keeps its data in tables/default.toml; this tool keeps the compiled
form in sync via go generate.

Examples:
  tablegen --input tables/default.toml --output table_default.go
  tablegen --input tables/default.toml    # Write to stdout`,
	RunE: runTablegen,
}

func init() {
	rootCmd.Flags().StringVarP(&tablegenInput, "input", "i", "tables/default.toml", "TOML symbol table to compile")
	rootCmd.Flags().StringVarP(&tablegenOutput, "output", "o", "", "Output file (default: stdout)")
}

func runTablegen(cmd *cobra.Command, args []string) error {
	table, err := symbols.Load(tablegenInput)
	if err != nil {
		return fmt.Errorf("failed to load table: %w", err)
	}

	source, err := generateTableSource(table, tablegenInput, tablegenOutput)
	if err != nil {
		return fmt.Errorf("failed to generate table source: %w", err)
	}

	if tablegenOutput == "" {
		fmt.Print(source)
		return nil
	}

	if err := os.WriteFile(tablegenOutput, []byte(source), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tablegenOutput, err)
	}

	fmt.Printf("✓ Generated %s (%d symbols)\n", tablegenOutput, table.Len())
	return nil
}

// generateTableSource renders Go source declaring defaultCandidates() for the
// given table. Symbols emit in ascending rune order, candidates in table order.
func generateTableSource(table symbols.Table, input, output string) (string, error) {
	header := fmt.Sprintf("Code generated by tablegen --input %s. DO NOT EDIT.", input)
	if output != "" {
		header = fmt.Sprintf("Code generated by tablegen --input %s --output %s. DO NOT EDIT.", input, output)
	}

	f := jen.NewFile("symbols")
	f.HeaderComment(header)

	f.Comment("defaultCandidates returns the candidate lists backing the built-in table.")
	f.Func().Id("defaultCandidates").Params().Map(jen.Rune()).Index().String().Block(
		jen.Return(jen.Map(jen.Rune()).Index().String().Values(jen.DictFunc(func(d jen.Dict) {
			for _, symbol := range table.Symbols() {
				candidates, _ := table.Lookup(symbol)
				values := make([]jen.Code, len(candidates))
				for i, candidate := range candidates {
					values[i] = jen.Lit(candidate)
				}
				d[jen.LitRune(symbol)] = jen.Index().String().Values(values...)
			}
		}))),
	)

	var buf strings.Builder
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
