package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiv50084/fantasyname/cmd/namegen/commands"
	"github.com/shiv50084/fantasyname/config"
	"github.com/shiv50084/fantasyname/errors"
	"github.com/shiv50084/fantasyname/logger"
)

var rootCmd = &cobra.Command{
	Use:   "namegen",
	Short: "namegen - Fantasy name generator",
	Long: `namegen - Fantasy name generator.

Compiles a small pattern grammar into a generator and renders random names
from it. A pattern mixes symbol groups, literal groups, alternation and
one-shot decorators:

  <...>   symbol group: each character expands through the symbol table
  (...)   literal group: characters stay verbatim
  |       alternation between branches of a group
  !       capitalize the next expansion (symbol groups only)
  ~       reverse the next expansion (symbol groups only)

The pattern itself is an implicit symbol group, so top-level characters
expand through the table. Built-in symbols:

  s  syllable                           v  vowel
  V  vowel combination                  c  consonant
  B  word-initial consonant cluster     C  mid-word consonant cluster
  i  insult root                        m  mushy-name root
  M  mushy-name suffix                  D  "stupid" consonant
  d  "stupid" syllable

Available commands:
  forge   - Generate names from a pattern
  inspect - Show outcome statistics for a pattern
  list    - Enumerate every name a pattern can produce
  symbols - Show the effective symbol table
  config  - Manage namegen configuration

Examples:
  namegen forge "!BVC"             # One capitalized name
  namegen forge "<s|B>Vm" -n 20    # Twenty names from a richer pattern
  namegen inspect "!sV(dim|bar)"   # Outcome count and length bounds
  namegen list "(a|b)(c|d)"        # Every name the pattern can make
  namegen symbols                  # Show the symbol table`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		verbosity, _ := cmd.Flags().GetCount("verbose")

		logJSON := false
		if cfg, err := config.Load(); err == nil {
			logJSON = cfg.Log.JSON
		}

		if err := logger.Initialize(logJSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results in JSON format where supported")

	// Add commands
	rootCmd.AddCommand(commands.ForgeCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.ListCmd)
	rootCmd.AddCommand(commands.SymbolsCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
