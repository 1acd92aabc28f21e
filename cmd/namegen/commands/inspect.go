package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/shiv50084/fantasyname/display"
	"github.com/shiv50084/fantasyname/logger"
	"github.com/shiv50084/fantasyname/namegen/pattern"
)

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect [pattern]",
	Short: "Show outcome statistics for a pattern",
	Long: `Show how many distinct names a pattern can produce and how long they get.

The numbers are exact and computed without rendering anything. Lengths are
in runes. A pattern whose outcome space stays at or under the configured
inspect.warn_count is flagged as enumerable with 'namegen list'.

Examples:
  namegen inspect "!BVC"
  namegen inspect "<s|B>Vm" --json
  namegen inspect "sss" --table elvish.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	InspectCmd.Flags().Bool("json", false, "Output statistics in JSON format")
	InspectCmd.Flags().String("table", "", "TOML symbol table layered over the built-in table")
}

// patternStats is the JSON shape of inspect output.
type patternStats struct {
	Pattern    string `json:"pattern"`
	Count      int    `json:"count"`
	MinLength  int    `json:"min_length"`
	MaxLength  int    `json:"max_length"`
	Enumerable bool   `json:"enumerable"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pat := patternFromArgs(args, cfg)

	table, err := effectiveTable(tablePathFromFlag(cmd, cfg))
	if err != nil {
		return err
	}

	gen, err := pattern.Compile(pat, table)
	if err != nil {
		return err
	}

	stats := patternStats{
		Pattern:    pat,
		Count:      gen.Count(),
		MinLength:  gen.MinLength(),
		MaxLength:  gen.MaxLength(),
		Enumerable: cfg.Inspect.WarnCount == 0 || gen.Count() <= cfg.Inspect.WarnCount,
	}

	if !stats.Enumerable {
		logger.Warnw("pattern outcome space exceeds the enumeration threshold",
			logger.FieldPattern, pat,
			logger.FieldCount, stats.Count,
			"warn_count", cfg.Inspect.WarnCount,
		)
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(stats)
	}

	pterm.Printf("Pattern: %s\n", pterm.LightCyan(stats.Pattern))
	pterm.Printf("  Outcomes:   %d\n", stats.Count)
	pterm.Printf("  Min length: %d runes\n", stats.MinLength)
	pterm.Printf("  Max length: %d runes\n", stats.MaxLength)
	if stats.Enumerable {
		pterm.Printf("  %s\n", pterm.LightGreen("Enumerable with 'namegen list'"))
	} else {
		pterm.Printf("  %s\n", pterm.Yellow("Outcome space is large; 'namegen list' may take a while"))
	}
	return nil
}
