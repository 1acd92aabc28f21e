package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiv50084/fantasyname/errors"
	"github.com/shiv50084/fantasyname/logger"
	"github.com/shiv50084/fantasyname/namegen/pattern"
)

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "Enumerate every name a pattern can produce",
	Long: `Enumerate the complete outcome space of a pattern, one name per line.

Output order is deterministic: alternatives in declaration order, sequences
with the leftmost part varying slowest. Duplicates are not removed; a name
printed twice is reachable through two distinct paths.

The configured list.limit guards against runaway enumerations. Pass
--limit 0 to enumerate without a guard.

Examples:
  namegen list "(a|b)(c|d)"      # ac ad bc bd
  namegen list "!Bv"             # Every cluster-vowel pair, capitalized
  namegen list "ss" --limit 0    # All 13225 two-syllable combinations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	ListCmd.Flags().Int("limit", 0, "Refuse to enumerate above this many outcomes (0 = no limit, default from config)")
	ListCmd.Flags().String("table", "", "TOML symbol table layered over the built-in table")
}

func runList(cmd *cobra.Command, args []string) error {
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

	limit := cfg.List.Limit
	if cmd.Flags().Changed("limit") {
		limit, _ = cmd.Flags().GetInt("limit")
	}

	if limit > 0 && gen.Count() > limit {
		return errors.WithHintf(
			errors.Newf("pattern %q has %d outcomes, more than the enumeration limit of %d", pat, gen.Count(), limit),
			"re-run with --limit %d, or --limit 0 for no guard", gen.Count())
	}

	logger.Debugw("enumerating pattern",
		logger.FieldPattern, pat,
		logger.FieldCount, gen.Count(),
	)

	w := bufio.NewWriter(os.Stdout)
	for _, name := range gen.Enumerate() {
		fmt.Fprintln(w, name)
	}
	return w.Flush()
}
